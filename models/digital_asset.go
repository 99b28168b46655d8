package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AspectRatio43  = "RATIO_4_3"
	AspectRatio916 = "RATIO_9_16"
)

// DefaultDepartment is assigned when neither the request nor the caller carries one.
const DefaultDepartment = "Digital"

type DigitalAsset struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContentName     string             `bson:"content_name" json:"contentName"`
	Description     string             `bson:"description" json:"description"`
	AspectRatio     string             `bson:"aspect_ratio" json:"aspectRatio"`
	GoogleDriveLink string             `bson:"google_drive_link,omitempty" json:"googleDriveLink,omitempty"`
	PreviewFile     string             `bson:"preview_file,omitempty" json:"previewFile,omitempty"` // base64 payload
	PreviewFileName string             `bson:"preview_file_name,omitempty" json:"previewFileName,omitempty"`
	PreviewFileSize int64              `bson:"preview_file_size,omitempty" json:"previewFileSize,omitempty"`
	Tags            string             `bson:"tags" json:"tags"`
	Department      string             `bson:"department" json:"department"`
	IsActive        bool               `bson:"is_active" json:"isActive"`
	CreatedByID     primitive.ObjectID `bson:"created_by_id" json:"createdById"`
	UpdatedByID     primitive.ObjectID `bson:"updated_by_id" json:"updatedById"`
	CreatedBy       *UserSummary       `bson:"-" json:"createdBy,omitempty"`
	UpdatedBy       *UserSummary       `bson:"-" json:"updatedBy,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

func ValidAspectRatio(ratio string) bool {
	return ratio == AspectRatio43 || ratio == AspectRatio916
}
