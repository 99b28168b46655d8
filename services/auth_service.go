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
	"golang.org/x/crypto/bcrypt"

	"assetvault/models"
	"assetvault/utils"
)

type AuthService struct {
	userCollection *mongo.Collection
}

type CreateUserInput struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Role       string
	Department string
}

func NewAuthService(db *mongo.Database) *AuthService {
	return &AuthService{
		userCollection: db.Collection("users"),
	}
}

// Login checks the password against the active user row. Failures are
// indistinguishable to the caller: unknown email and bad password both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.userCollection.FindOne(ctx, bson.M{
		"email":     email,
		"is_active": true,
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUser loads a user by hex ID.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.userCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// CreateUser inserts a user with a bcrypt-hashed password.
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	count, err := s.userCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:         primitive.NewObjectID(),
		Email:      input.Email,
		Password:   string(hashed),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       input.Role,
		Department: input.Department,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := s.userCollection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// ListUsers returns users newest-first with pagination.
func (s *AuthService) ListUsers(ctx context.Context, page, limit int) ([]models.User, utils.Pagination, error) {
	total, err := s.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to count users: %w", err)
	}

	pagination := utils.NewPagination(page, limit, total)

	findOptions := options.Find().
		SetSkip(pagination.Offset()).
		SetLimit(int64(pagination.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.userCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		return nil, utils.Pagination{}, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, pagination, nil
}

// EnsureIndexes creates the unique email key.
func (s *AuthService) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}

	if _, err := s.userCollection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create user index: %w", err)
	}
	return nil
}
