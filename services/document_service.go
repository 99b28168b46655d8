package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assetvault/models"
	"assetvault/utils"
)

type DocumentService struct {
	documentCollection *mongo.Collection
	userCollection     *mongo.Collection
}

type DocumentListOptions struct {
	Page       int
	Limit      int
	Search     string
	Category   string
	Department string
}

type CreateDocumentInput struct {
	Title       string
	Description string
	Category    string
	Tags        string
	FileName    string
	FileSize    int64
	Department  string
}

func NewDocumentService(db *mongo.Database) *DocumentService {
	return &DocumentService{
		documentCollection: db.Collection("documents"),
		userCollection:     db.Collection("users"),
	}
}

// BuildDocumentFilter applies the same visibility rules as digital assets:
// active rows, search OR-group ANDed with the department OR-group.
func BuildDocumentFilter(claims *utils.Claims, opts DocumentListOptions) bson.M {
	filter := bson.M{"is_active": true}

	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	var searchGroup []bson.M
	if opts.Search != "" {
		searchRegex := bson.M{"$regex": regexp.QuoteMeta(opts.Search)}
		searchGroup = []bson.M{
			{"title": searchRegex},
			{"description": searchRegex},
			{"tags": searchRegex},
		}
	}

	if claims.IsAdmin() {
		if opts.Department != "" && opts.Department != "all" {
			filter["department"] = opts.Department
		}
		if searchGroup != nil {
			filter["$or"] = searchGroup
		}
		return filter
	}

	if claims.Department == "" {
		if searchGroup != nil {
			filter["$or"] = searchGroup
		}
		return filter
	}

	departmentGroup := []bson.M{
		{"department": claims.Department},
		{"department": ""},
		{"department": nil},
	}

	if searchGroup != nil {
		filter["$and"] = []bson.M{
			{"$or": searchGroup},
			{"$or": departmentGroup},
		}
	} else {
		filter["$or"] = departmentGroup
	}

	return filter
}

func (s *DocumentService) List(ctx context.Context, claims *utils.Claims, opts DocumentListOptions) ([]models.Document, utils.Pagination, error) {
	filter := BuildDocumentFilter(claims, opts)

	total, err := s.documentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count documents: %w", err)
	}

	pagination := utils.NewPagination(opts.Page, opts.Limit, total)

	findOptions := options.Find().
		SetSkip(pagination.Offset()).
		SetLimit(int64(pagination.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.documentCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to fetch documents: %w", err)
	}
	defer cursor.Close(ctx)

	documents := []models.Document{}
	if err = cursor.All(ctx, &documents); err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to decode documents: %w", err)
	}

	if err := s.attachUserSummaries(ctx, documents); err != nil {
		return nil, utils.Pagination{}, err
	}

	return documents, pagination, nil
}

func (s *DocumentService) Create(ctx context.Context, claims *utils.Claims, input CreateDocumentInput, defaultDepartment string) (*models.Document, error) {
	creatorID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	department := input.Department
	if department == "" {
		department = claims.Department
	}
	if department == "" {
		department = defaultDepartment
	}

	now := time.Now()
	document := models.Document{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		FileName:    input.FileName,
		FileSize:    input.FileSize,
		Department:  department,
		IsActive:    true,
		CreatedByID: creatorID,
		UpdatedByID: creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.documentCollection.InsertOne(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	created := []models.Document{document}
	if err := s.attachUserSummaries(ctx, created); err != nil {
		return nil, err
	}

	return &created[0], nil
}

func (s *DocumentService) Delete(ctx context.Context, claims *utils.Claims, documentID string) (*models.Document, error) {
	objID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, ErrNotFound
	}

	updaterID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	var document models.Document
	err = s.documentCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":     false,
			"updated_by_id": updaterID,
			"updated_at":    time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}

	return &document, nil
}

func (s *DocumentService) attachUserSummaries(ctx context.Context, documents []models.Document) error {
	if len(documents) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(documents)*2)
	for _, document := range documents {
		ids = append(ids, document.CreatedByID, document.UpdatedByID)
	}

	summaries, err := loadUserSummaries(ctx, s.userCollection, ids)
	if err != nil {
		return err
	}

	for i := range documents {
		if summary, ok := summaries[documents[i].CreatedByID]; ok {
			documents[i].CreatedBy = &summary
		}
		if summary, ok := summaries[documents[i].UpdatedByID]; ok {
			documents[i].UpdatedBy = &summary
		}
	}
	return nil
}
