package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetvault/models"
)

const testSecret = "test-secret-key-for-signing"

func testUser() *models.User {
	return &models.User{
		ID:         primitive.NewObjectID(),
		Email:      "jane.doe@example.com",
		Role:       models.RoleUser,
		Department: "Marketing",
	}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	user := testUser()

	token, err := GenerateToken(user, testSecret, time.Hour, "assetvault")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "Marketing", claims.Department)
	assert.Equal(t, "assetvault", claims.Issuer)
	assert.False(t, claims.IsAdmin())
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, -time.Minute, "assetvault")
	require.NoError(t, err)

	claims, err := VerifyToken(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, time.Hour, "assetvault")
	require.NoError(t, err)

	claims, err := VerifyToken(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyTokenTampered(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, time.Hour, "assetvault")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	claims, err := VerifyToken(tampered, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyTokenGarbage(t *testing.T) {
	claims, err := VerifyToken("not-a-jwt-at-all", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestClaimsIsAdmin(t *testing.T) {
	admin := &Claims{Role: models.RoleAdmin}
	regular := &Claims{Role: models.RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, regular.IsAdmin())
}
