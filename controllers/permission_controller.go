package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/models"
	"assetvault/services"
	"assetvault/utils"
)

type PermissionController struct {
	permissionService *services.PermissionService
	auditService      *services.AuditService
}

type upsertGrantRequest struct {
	Department string `json:"department" binding:"required"`
	Module     string `json:"module" binding:"required"`
	CanRead    bool   `json:"canRead"`
	CanWrite   bool   `json:"canWrite"`
	CanDelete  bool   `json:"canDelete"`
}

func NewPermissionController(permissionService *services.PermissionService, auditService *services.AuditService) *PermissionController {
	return &PermissionController{
		permissionService: permissionService,
		auditService:      auditService,
	}
}

// List handles GET /permissions?department=X for administrators.
func (pc *PermissionController) List(c *gin.Context) {
	department := c.Query("department")
	if department == "" {
		utils.BadRequestResponse(c, "Department is required")
		return
	}

	grants, err := pc.permissionService.ListGrants(c.Request.Context(), department)
	if err != nil {
		utils.LogError("Failed to fetch permission grants", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch permissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"permissions": grants})
}

// Upsert handles POST /permissions, creating or replacing the grant keyed by
// (department, module).
func (pc *PermissionController) Upsert(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req upsertGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Department and module are required")
		return
	}
	if err := utils.ValidateModule(req.Module); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	grant, err := pc.permissionService.UpsertGrant(c.Request.Context(), &models.PermissionGrant{
		Department: req.Department,
		Module:     req.Module,
		CanRead:    req.CanRead,
		CanWrite:   req.CanWrite,
		CanDelete:  req.CanDelete,
	})
	if err != nil {
		utils.LogError("Failed to upsert permission grant", err)
		utils.InternalServerErrorResponse(c, "Failed to save permission")
		return
	}

	recordAudit(c, pc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionUpsertPermission,
		Resource:   "PermissionGrant",
		ResourceID: grant.ID.Hex(),
		NewValues:  grant,
	})

	c.JSON(http.StatusOK, gin.H{"permission": grant})
}
