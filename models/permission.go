package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// System modules against which permissions are granted per department.
const (
	ModuleAssets        = "ASSETS"
	ModuleDocuments     = "DOCUMENTS"
	ModuleDigitalAssets = "DIGITAL_ASSETS"
)

// PermissionGrant maps (department, module) to its access flags. At most one
// grant exists per key; the three flags are independent of each other.
type PermissionGrant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Department string             `bson:"department" json:"department"`
	Module     string             `bson:"module" json:"module"`
	CanRead    bool               `bson:"can_read" json:"canRead"`
	CanWrite   bool               `bson:"can_write" json:"canWrite"`
	CanDelete  bool               `bson:"can_delete" json:"canDelete"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PermissionFlags is the effective access resolved for a caller.
type PermissionFlags struct {
	CanRead   bool `json:"canRead"`
	CanWrite  bool `json:"canWrite"`
	CanDelete bool `json:"canDelete"`
}

func ValidModule(module string) bool {
	switch module {
	case ModuleAssets, ModuleDocuments, ModuleDigitalAssets:
		return true
	}
	return false
}
