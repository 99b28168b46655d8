package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetvault/models"
	"assetvault/utils"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signedToken(t *testing.T, role, department string) string {
	t.Helper()

	user := &models.User{
		ID:         primitive.NewObjectID(),
		Email:      "tester@example.com",
		Role:       role,
		Department: department,
	}

	token, err := utils.GenerateToken(user, testSecret, time.Hour, "assetvault")
	require.NoError(t, err)
	return token
}

func newAuthRouter(handlerCalled *bool, capturedClaims **utils.Claims) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		*handlerCalled = true
		*capturedClaims = CurrentClaims(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	var handlerCalled bool
	var claims *utils.Claims
	router := newAuthRouter(&handlerCalled, &claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	var handlerCalled bool
	var claims *utils.Claims
	router := newAuthRouter(&handlerCalled, &claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	var handlerCalled bool
	var claims *utils.Claims
	router := newAuthRouter(&handlerCalled, &claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body["error"])
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	var handlerCalled bool
	var claims *utils.Claims
	router := newAuthRouter(&handlerCalled, &claims)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, models.RoleUser, "Design"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled)
	require.NotNil(t, claims)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "Design", claims.Department)
}

func TestRequireRoleForbidden(t *testing.T) {
	var handlerCalled bool

	router := gin.New()
	router.GET("/admin", AuthMiddleware(testSecret), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, models.RoleUser, "Design"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden", body["error"])
}

func TestRequireRoleAllowed(t *testing.T) {
	var handlerCalled bool

	router := gin.New()
	router.GET("/admin", AuthMiddleware(testSecret), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, models.RoleAdmin, "Digital"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled)
}
