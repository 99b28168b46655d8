package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"assetvault/models"
	"assetvault/services"
	"assetvault/utils"
)

// newCreateAssetRouter wires Create behind injected admin claims. The services
// carry nil collections, so any storage or audit access on a rejected request
// panics and fails the test.
func newCreateAssetRouter() *gin.Engine {
	controller := NewDigitalAssetController(
		&services.AssetService{},
		&services.PermissionService{},
		&services.AuditService{},
		"Digital",
		10485760,
	)

	router := gin.New()
	router.POST("/digital-assets", func(c *gin.Context) {
		c.Set("claims", &utils.Claims{
			UserID:     primitive.NewObjectID().Hex(),
			Role:       models.RoleAdmin,
			Department: "Digital",
		})
	}, controller.Create)
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/digital-assets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAssetMissingAspectRatioRejectedBeforeStore(t *testing.T) {
	router := newCreateAssetRouter()

	w := postJSON(router, `{"contentName": "Launch Banner"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Content name and aspect ratio are required", body["error"])
}

func TestCreateAssetMissingContentNameRejectedBeforeStore(t *testing.T) {
	router := newCreateAssetRouter()

	w := postJSON(router, `{"aspectRatio": "RATIO_4_3"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssetInvalidAspectRatioRejectedBeforeStore(t *testing.T) {
	router := newCreateAssetRouter()

	w := postJSON(router, `{"contentName": "Launch Banner", "aspectRatio": "16:9"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "invalid aspect ratio")
}
