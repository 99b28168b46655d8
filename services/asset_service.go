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

type AssetService struct {
	assetCollection *mongo.Collection
	userCollection  *mongo.Collection
}

// AssetListOptions carries the listing query parameters.
type AssetListOptions struct {
	Page        int
	Limit       int
	Search      string
	AspectRatio string
	Department  string
}

// CreateAssetInput is the normalized creation payload, independent of whether
// it arrived as multipart form data or JSON.
type CreateAssetInput struct {
	ContentName     string
	Description     string
	AspectRatio     string
	GoogleDriveLink string
	Tags            string
	Department      string
	PreviewFile     string
	PreviewFileName string
	PreviewFileSize int64
}

func NewAssetService(db *mongo.Database) *AssetService {
	return &AssetService{
		assetCollection: db.Collection("digital_assets"),
		userCollection:  db.Collection("users"),
	}
}

// BuildAssetFilter composes the listing filter from the caller's claims and
// query parameters. Active assets only; the search OR-group and the
// department visibility OR-group combine conjunctively, never flattened.
func BuildAssetFilter(claims *utils.Claims, opts AssetListOptions) bson.M {
	filter := bson.M{"is_active": true}

	if opts.AspectRatio != "" {
		// Exact match; an unknown value just selects nothing.
		filter["aspect_ratio"] = opts.AspectRatio
	}

	var searchGroup []bson.M
	if opts.Search != "" {
		// Case-sensitive substring match.
		searchRegex := bson.M{"$regex": regexp.QuoteMeta(opts.Search)}
		searchGroup = []bson.M{
			{"content_name": searchRegex},
			{"description": searchRegex},
			{"tags": searchRegex},
		}
	}

	if claims.IsAdmin() {
		// Admins see every department unless they explicitly narrow the view.
		if opts.Department != "" && opts.Department != "all" {
			filter["department"] = opts.Department
		}
		if searchGroup != nil {
			filter["$or"] = searchGroup
		}
		return filter
	}

	// A caller without a department is not restricted by department at all.
	if claims.Department == "" {
		if searchGroup != nil {
			filter["$or"] = searchGroup
		}
		return filter
	}

	// Non-admins see their own department plus department-less assets.
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

// List returns the page slice plus pagination metadata. The total is counted
// independently of the slice so page counts stay exact.
func (s *AssetService) List(ctx context.Context, claims *utils.Claims, opts AssetListOptions) ([]models.DigitalAsset, utils.Pagination, error) {
	filter := BuildAssetFilter(claims, opts)

	total, err := s.assetCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count digital assets: %w", err)
	}

	pagination := utils.NewPagination(opts.Page, opts.Limit, total)

	findOptions := options.Find().
		SetSkip(pagination.Offset()).
		SetLimit(int64(pagination.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.assetCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to fetch digital assets: %w", err)
	}
	defer cursor.Close(ctx)

	assets := []models.DigitalAsset{}
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to decode digital assets: %w", err)
	}

	if err := s.attachUserSummaries(ctx, assets); err != nil {
		return nil, utils.Pagination{}, err
	}

	return assets, pagination, nil
}

// Create inserts a new active asset attributed to the caller. The caller's
// department is the default when none is supplied, then the fixed label.
func (s *AssetService) Create(ctx context.Context, claims *utils.Claims, input CreateAssetInput, defaultDepartment string) (*models.DigitalAsset, error) {
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
	asset := models.DigitalAsset{
		ID:              primitive.NewObjectID(),
		ContentName:     input.ContentName,
		Description:     input.Description,
		AspectRatio:     input.AspectRatio,
		GoogleDriveLink: input.GoogleDriveLink,
		PreviewFile:     input.PreviewFile,
		PreviewFileName: input.PreviewFileName,
		PreviewFileSize: input.PreviewFileSize,
		Tags:            input.Tags,
		Department:      department,
		IsActive:        true,
		CreatedByID:     creatorID,
		UpdatedByID:     creatorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.assetCollection.InsertOne(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create digital asset: %w", err)
	}

	created := []models.DigitalAsset{asset}
	if err := s.attachUserSummaries(ctx, created); err != nil {
		return nil, err
	}

	return &created[0], nil
}

// Delete soft-deletes the asset: the row stays for audit history.
func (s *AssetService) Delete(ctx context.Context, claims *utils.Claims, assetID string) (*models.DigitalAsset, error) {
	objID, err := primitive.ObjectIDFromHex(assetID)
	if err != nil {
		return nil, ErrNotFound
	}

	updaterID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	var asset models.DigitalAsset
	err = s.assetCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":     false,
			"updated_by_id": updaterID,
			"updated_at":    time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&asset)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete digital asset: %w", err)
	}

	return &asset, nil
}

func (s *AssetService) attachUserSummaries(ctx context.Context, assets []models.DigitalAsset) error {
	if len(assets) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(assets)*2)
	for _, asset := range assets {
		ids = append(ids, asset.CreatedByID, asset.UpdatedByID)
	}

	summaries, err := loadUserSummaries(ctx, s.userCollection, ids)
	if err != nil {
		return err
	}

	for i := range assets {
		if summary, ok := summaries[assets[i].CreatedByID]; ok {
			assets[i].CreatedBy = &summary
		}
		if summary, ok := summaries[assets[i].UpdatedByID]; ok {
			assets[i].UpdatedBy = &summary
		}
	}
	return nil
}

func loadUserSummaries(ctx context.Context, userCollection *mongo.Collection, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	cursor, err := userCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.UserSummary
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user summaries: %w", err)
	}

	summaries := make(map[primitive.ObjectID]models.UserSummary, len(users))
	for _, user := range users {
		summaries[user.ID] = user
	}
	return summaries, nil
}
