package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Tags        string             `bson:"tags" json:"tags"`
	FileName    string             `bson:"file_name,omitempty" json:"fileName,omitempty"`
	FileSize    int64              `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	Department  string             `bson:"department" json:"department"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedByID primitive.ObjectID `bson:"created_by_id" json:"createdById"`
	UpdatedByID primitive.ObjectID `bson:"updated_by_id" json:"updatedById"`
	CreatedBy   *UserSummary       `bson:"-" json:"createdBy,omitempty"`
	UpdatedBy   *UserSummary       `bson:"-" json:"updatedBy,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
