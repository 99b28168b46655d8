package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog is an append-only record of a mutating action. Values are stored
// as JSON-serialized snapshots; the application never reads them back.
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	Action     string             `bson:"action" json:"action"`
	Resource   string             `bson:"resource" json:"resource"`
	ResourceID string             `bson:"resource_id,omitempty" json:"resourceId,omitempty"`
	OldValues  string             `bson:"old_values,omitempty" json:"oldValues,omitempty"`
	NewValues  string             `bson:"new_values,omitempty" json:"newValues,omitempty"`
	IPAddress  string             `bson:"ip_address" json:"ipAddress"`
	UserAgent  string             `bson:"user_agent" json:"userAgent"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
