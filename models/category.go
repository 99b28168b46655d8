package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryTypeAsset      = "ASSET"
	CategoryTypeDocument   = "DOCUMENT"
	CategoryTypeDepartment = "DEPARTMENT"
)

// Category is the shared taxonomy record for asset categories, document
// categories and departments, discriminated by Type.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeAsset, CategoryTypeDocument, CategoryTypeDepartment:
		return true
	}
	return false
}
