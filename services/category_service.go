package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetvault/models"
)

type CategoryService struct {
	categoryCollection *mongo.Collection
}

func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{
		categoryCollection: db.Collection("categories"),
	}
}

// List returns active categories of one type, name-sorted.
func (s *CategoryService) List(ctx context.Context, categoryType string) ([]models.Category, error) {
	cursor, err := s.categoryCollection.Find(ctx,
		bson.M{"type": categoryType, "is_active": true},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

// Create inserts a category. Names are unique within a type.
func (s *CategoryService) Create(ctx context.Context, categoryType, name, description string) (*models.Category, error) {
	count, err := s.categoryCollection.CountDocuments(ctx, bson.M{
		"type":      categoryType,
		"name":      name,
		"is_active": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	now := time.Now()
	category := models.Category{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: description,
		Type:        categoryType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.categoryCollection.InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// Update renames or redescribes an existing category.
func (s *CategoryService) Update(ctx context.Context, categoryID, name, description string) (*models.Category, error) {
	objID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrNotFound
	}

	var category models.Category
	err = s.categoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "is_active": true},
		bson.M{"$set": bson.M{
			"name":        name,
			"description": description,
			"updated_at":  time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

// Delete deactivates a category rather than removing the row.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) (*models.Category, error) {
	objID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrNotFound
	}

	var category models.Category
	err = s.categoryCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &category, nil
}
