package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"assetvault/utils"
)

// chartPalette cycles across category slices in the dashboard pie chart.
var chartPalette = []string{"#8B5CF6", "#10B981", "#F59E0B", "#EF4444", "#6B7280"}

type DashboardService struct {
	assetCollection    *mongo.Collection
	documentCollection *mongo.Collection
	userCollection     *mongo.Collection
	auditService       *AuditService
}

type CategorySlice struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
	Color string `json:"color"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type ActivityPoint struct {
	Date     string `json:"date"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Count    int64  `json:"count"`
}

// DashboardStats is the payload behind the dashboard charts.
type DashboardStats struct {
	TotalAssets           int64           `json:"totalAssets"`
	ActiveAssets          int64           `json:"activeAssets"`
	TotalDocuments        int64           `json:"totalDocuments"`
	ActiveDocuments       int64           `json:"activeDocuments"`
	TotalUsers            int64           `json:"totalUsers"`
	ActiveUsers           int64           `json:"activeUsers"`
	RecentActivities      int64           `json:"recentActivities"`
	AssetsByCategory      []CategorySlice `json:"assetsByCategory"`
	DocumentsOverTime     []MonthlyCount  `json:"documentsOverTime"`
	RecentAuditActivities []ActivityPoint `json:"recentAuditActivities"`
}

func NewDashboardService(db *mongo.Database, auditService *AuditService) *DashboardService {
	return &DashboardService{
		assetCollection:    db.Collection("digital_assets"),
		documentCollection: db.Collection("documents"),
		userCollection:     db.Collection("users"),
		auditService:       auditService,
	}
}

// Stats assembles the dashboard numbers. User and activity figures are
// admin-only and stay zero for everyone else.
func (s *DashboardService) Stats(ctx context.Context, claims *utils.Claims) (*DashboardStats, error) {
	stats := &DashboardStats{
		AssetsByCategory:      []CategorySlice{},
		DocumentsOverTime:     []MonthlyCount{},
		RecentAuditActivities: []ActivityPoint{},
	}

	var err error
	if stats.TotalAssets, err = s.assetCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count assets: %w", err)
	}
	if stats.ActiveAssets, err = s.assetCollection.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return nil, fmt.Errorf("failed to count active assets: %w", err)
	}
	if stats.TotalDocuments, err = s.documentCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	if stats.ActiveDocuments, err = s.documentCollection.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return nil, fmt.Errorf("failed to count active documents: %w", err)
	}

	if stats.AssetsByCategory, err = s.assetsByDepartment(ctx); err != nil {
		return nil, err
	}
	if stats.DocumentsOverTime, err = s.documentsOverTime(ctx); err != nil {
		return nil, err
	}

	if !claims.IsAdmin() {
		return stats, nil
	}

	if stats.TotalUsers, err = s.userCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.ActiveUsers, err = s.userCollection.CountDocuments(ctx, bson.M{"is_active": true}); err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if stats.RecentActivities, err = s.auditService.CountSince(ctx, time.Now().Add(-24*time.Hour)); err != nil {
		return nil, err
	}
	if stats.RecentAuditActivities, err = s.recentAuditActivities(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *DashboardService) assetsByDepartment(ctx context.Context) ([]CategorySlice, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true}}},
		{{Key: "$group", Value: bson.M{"_id": "$department", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := s.assetCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate assets by department: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Department string `bson:"_id"`
		Count      int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode asset aggregation: %w", err)
	}

	slices := make([]CategorySlice, 0, len(rows))
	for i, row := range rows {
		name := row.Department
		if name == "" {
			name = "Unassigned"
		}
		slices = append(slices, CategorySlice{
			Name:  name,
			Count: row.Count,
			Color: chartPalette[i%len(chartPalette)],
		})
	}
	return slices, nil
}

func (s *DashboardService) documentsOverTime(ctx context.Context) ([]MonthlyCount, error) {
	cutoff := time.Now().AddDate(0, -6, 0)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_active": true, "created_at": bson.M{"$gte": cutoff}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := s.documentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate documents over time: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Month string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode document aggregation: %w", err)
	}

	counts := make([]MonthlyCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, MonthlyCount{Month: monthLabel(row.Month), Count: row.Count})
	}
	return counts, nil
}

func (s *DashboardService) recentAuditActivities(ctx context.Context) ([]ActivityPoint, error) {
	cutoff := time.Now().AddDate(0, 0, -7)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": cutoff}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"date":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
				"action":   "$action",
				"resource": "$resource",
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id.date": 1}}},
	}

	cursor, err := s.auditService.auditCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate audit activity: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key struct {
			Date     string `bson:"date"`
			Action   string `bson:"action"`
			Resource string `bson:"resource"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode audit aggregation: %w", err)
	}

	points := make([]ActivityPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ActivityPoint{
			Date:     row.Key.Date,
			Action:   row.Key.Action,
			Resource: row.Key.Resource,
			Count:    row.Count,
		})
	}
	return points, nil
}

func monthLabel(yearMonth string) string {
	parsed, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return parsed.Format("Jan 2006")
}
