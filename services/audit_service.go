package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetvault/models"
	"assetvault/utils"
)

// Audit action tags for mutating endpoints.
const (
	ActionCreateDigitalAsset = "CREATE_DIGITAL_ASSET"
	ActionDeleteDigitalAsset = "DELETE_DIGITAL_ASSET"
	ActionCreateDocument     = "CREATE_DOCUMENT"
	ActionDeleteDocument     = "DELETE_DOCUMENT"
	ActionCreateCategory     = "CREATE_CATEGORY"
	ActionUpdateCategory     = "UPDATE_CATEGORY"
	ActionDeleteCategory     = "DELETE_CATEGORY"
	ActionUpsertPermission   = "UPSERT_PERMISSION"
	ActionCreateUser         = "CREATE_USER"
)

type AuditService struct {
	auditCollection *mongo.Collection
}

// AuditEntry is what handlers hand to the recorder. Old and new states are
// serialized to JSON before storage; serialization failures degrade to an
// empty snapshot rather than failing the record.
type AuditEntry struct {
	UserID     string
	Action     string
	Resource   string
	ResourceID string
	OldValues  interface{}
	NewValues  interface{}
	IPAddress  string
	UserAgent  string
}

func NewAuditService(db *mongo.Database) *AuditService {
	return &AuditService{
		auditCollection: db.Collection("audit_logs"),
	}
}

// Record appends one audit row. Callers treat failures as best-effort: log
// and move on, never roll back the primary operation.
func (s *AuditService) Record(ctx context.Context, entry AuditEntry) error {
	row := models.AuditLog{
		ID:         primitive.NewObjectID(),
		UserID:     entry.UserID,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		OldValues:  marshalSnapshot(entry.OldValues),
		NewValues:  marshalSnapshot(entry.NewValues),
		IPAddress:  entry.IPAddress,
		UserAgent:  entry.UserAgent,
		CreatedAt:  time.Now(),
	}

	if _, err := s.auditCollection.InsertOne(ctx, row); err != nil {
		return fmt.Errorf("failed to record audit log: %w", err)
	}
	return nil
}

// List returns audit rows newest-first for the admin view.
func (s *AuditService) List(ctx context.Context, page, limit int) ([]models.AuditLog, utils.Pagination, error) {
	total, err := s.auditCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count audit logs: %w", err)
	}

	pagination := utils.NewPagination(page, limit, total)

	findOptions := options.Find().
		SetSkip(pagination.Offset()).
		SetLimit(int64(pagination.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.auditCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to fetch audit logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []models.AuditLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to decode audit logs: %w", err)
	}

	return logs, pagination, nil
}

// CountSince counts audit rows created after the cutoff.
func (s *AuditService) CountSince(ctx context.Context, cutoff time.Time) (int64, error) {
	count, err := s.auditCollection.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count recent audit logs: %w", err)
	}
	return count, nil
}

// DeleteOlderThan prunes rows past the retention window. Used by the
// maintenance job only; the application itself never deletes audit rows.
func (s *AuditService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.auditCollection.DeleteMany(ctx, bson.M{
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit logs: %w", err)
	}
	return result.DeletedCount, nil
}

func marshalSnapshot(value interface{}) string {
	if value == nil {
		return ""
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}
