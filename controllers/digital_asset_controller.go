package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/models"
	"assetvault/services"
	"assetvault/utils"
)

type DigitalAssetController struct {
	assetService       *services.AssetService
	permissionService  *services.PermissionService
	auditService       *services.AuditService
	defaultDepartment  string
	maxPreviewFileSize int64
}

func NewDigitalAssetController(assetService *services.AssetService, permissionService *services.PermissionService, auditService *services.AuditService, defaultDepartment string, maxPreviewFileSize int64) *DigitalAssetController {
	return &DigitalAssetController{
		assetService:       assetService,
		permissionService:  permissionService,
		auditService:       auditService,
		defaultDepartment:  defaultDepartment,
		maxPreviewFileSize: maxPreviewFileSize,
	}
}

// List handles GET /digital-assets with search, aspect ratio, department and
// pagination query parameters.
func (ac *DigitalAssetController) List(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	opts := services.AssetListOptions{
		Page:        parseIntQuery(c, "page", 1),
		Limit:       parseIntQuery(c, "limit", 10),
		Search:      c.Query("search"),
		AspectRatio: c.Query("aspectRatio"),
		Department:  c.Query("department"),
	}

	assets, pagination, err := ac.assetService.List(c.Request.Context(), claims, opts)
	if err != nil {
		utils.LogError("Failed to fetch digital assets", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch digital assets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"digitalAssets": assets,
		"pagination":    pagination,
	})
}

// Create handles POST /digital-assets, accepting multipart form data or JSON.
func (ac *DigitalAssetController) Create(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	flags, err := ac.permissionService.Resolve(c.Request.Context(), claims.Department, claims.Role, models.ModuleDigitalAssets)
	if err != nil {
		utils.LogError("Permission check failed", err)
		utils.InternalServerErrorResponse(c, "Failed to create digital asset")
		return
	}
	if !flags.CanWrite {
		utils.ForbiddenResponse(c, "You do not have permission to create digital assets")
		return
	}

	req, err := decodeCreateAssetRequest(c, ac.maxPreviewFileSize)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if req.ContentName == "" || req.AspectRatio == "" {
		utils.BadRequestResponse(c, "Content name and aspect ratio are required")
		return
	}
	if err := utils.ValidateContentName(req.ContentName); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}
	if err := utils.ValidateAspectRatio(req.AspectRatio); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	asset, err := ac.assetService.Create(c.Request.Context(), claims, req.toInput(), ac.defaultDepartment)
	if err != nil {
		utils.LogError("Failed to create digital asset", err)
		utils.InternalServerErrorResponse(c, "Failed to create digital asset")
		return
	}

	recordAudit(c, ac.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionCreateDigitalAsset,
		Resource:   "DigitalAsset",
		ResourceID: asset.ID.Hex(),
		NewValues:  asset,
	})

	c.JSON(http.StatusCreated, gin.H{"digitalAsset": asset})
}

// Delete handles DELETE /digital-assets/:id, gated on the canDelete flag.
func (ac *DigitalAssetController) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	flags, err := ac.permissionService.Resolve(c.Request.Context(), claims.Department, claims.Role, models.ModuleDigitalAssets)
	if err != nil {
		utils.LogError("Permission check failed", err)
		utils.InternalServerErrorResponse(c, "Failed to delete digital asset")
		return
	}
	if !flags.CanDelete {
		utils.ForbiddenResponse(c, "You do not have permission to delete digital assets")
		return
	}

	asset, err := ac.assetService.Delete(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Digital asset not found")
			return
		}
		utils.LogError("Failed to delete digital asset", err)
		utils.InternalServerErrorResponse(c, "Failed to delete digital asset")
		return
	}

	recordAudit(c, ac.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionDeleteDigitalAsset,
		Resource:   "DigitalAsset",
		ResourceID: asset.ID.Hex(),
		OldValues:  asset,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Digital asset deleted"})
}

// Permissions handles PATCH /digital-assets, returning the caller's resolved
// flags for the digital assets module.
func (ac *DigitalAssetController) Permissions(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	flags, err := ac.permissionService.Resolve(c.Request.Context(), claims.Department, claims.Role, models.ModuleDigitalAssets)
	if err != nil {
		utils.LogError("Failed to resolve permissions", err)
		utils.InternalServerErrorResponse(c, "Failed to get permissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"permissions": flags})
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
