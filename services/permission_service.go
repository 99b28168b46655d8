package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetvault/models"
)

type PermissionService struct {
	grantCollection *mongo.Collection
}

func NewPermissionService(db *mongo.Database) *PermissionService {
	return &PermissionService{
		grantCollection: db.Collection("permissions"),
	}
}

// Resolve returns the effective flags for (department, role, module). The
// administrative role bypasses stored grants entirely; a missing grant falls
// back to the default policy. One lookup, no mutation, no caching.
func (s *PermissionService) Resolve(ctx context.Context, department, role, module string) (models.PermissionFlags, error) {
	if role == models.RoleAdmin {
		return models.PermissionFlags{CanRead: true, CanWrite: true, CanDelete: true}, nil
	}

	var grant models.PermissionGrant
	err := s.grantCollection.FindOne(ctx, bson.M{
		"department": department,
		"module":     module,
	}).Decode(&grant)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return FlagsFromGrant(role, nil), nil
		}
		return models.PermissionFlags{}, fmt.Errorf("permission lookup failed: %w", err)
	}

	return FlagsFromGrant(role, &grant), nil
}

// FlagsFromGrant computes effective flags from an optional stored grant.
// Absent a grant the default policy applies: visible but not mutable.
func FlagsFromGrant(role string, grant *models.PermissionGrant) models.PermissionFlags {
	if role == models.RoleAdmin {
		return models.PermissionFlags{CanRead: true, CanWrite: true, CanDelete: true}
	}
	if grant == nil {
		return models.PermissionFlags{CanRead: true, CanWrite: false, CanDelete: false}
	}
	return models.PermissionFlags{
		CanRead:   grant.CanRead,
		CanWrite:  grant.CanWrite,
		CanDelete: grant.CanDelete,
	}
}

// UpsertGrant creates or replaces the grant keyed by (department, module).
func (s *PermissionService) UpsertGrant(ctx context.Context, grant *models.PermissionGrant) (*models.PermissionGrant, error) {
	now := time.Now()

	filter := bson.M{
		"department": grant.Department,
		"module":     grant.Module,
	}
	update := bson.M{
		"$set": bson.M{
			"can_read":   grant.CanRead,
			"can_write":  grant.CanWrite,
			"can_delete": grant.CanDelete,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"department": grant.Department,
			"module":     grant.Module,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.PermissionGrant
	if err := s.grantCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert permission grant: %w", err)
	}

	return &stored, nil
}

// ListGrants returns all grants for a department.
func (s *PermissionService) ListGrants(ctx context.Context, department string) ([]models.PermissionGrant, error) {
	cursor, err := s.grantCollection.Find(ctx, bson.M{"department": department})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch permission grants: %w", err)
	}
	defer cursor.Close(ctx)

	grants := []models.PermissionGrant{}
	if err = cursor.All(ctx, &grants); err != nil {
		return nil, fmt.Errorf("failed to decode permission grants: %w", err)
	}

	return grants, nil
}

// EnsureIndexes creates the unique (department, module) key.
func (s *PermissionService) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "department", Value: 1}, {Key: "module", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("department_module_unique"),
	}

	if _, err := s.grantCollection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create permission index: %w", err)
	}
	return nil
}
