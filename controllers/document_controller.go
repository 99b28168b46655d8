package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/models"
	"assetvault/services"
	"assetvault/utils"
)

type DocumentController struct {
	documentService   *services.DocumentService
	permissionService *services.PermissionService
	auditService      *services.AuditService
	defaultDepartment string
}

type createDocumentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tags        string `json:"tags"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	Department  string `json:"department"`
}

func NewDocumentController(documentService *services.DocumentService, permissionService *services.PermissionService, auditService *services.AuditService, defaultDepartment string) *DocumentController {
	return &DocumentController{
		documentService:   documentService,
		permissionService: permissionService,
		auditService:      auditService,
		defaultDepartment: defaultDepartment,
	}
}

func (dc *DocumentController) List(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	opts := services.DocumentListOptions{
		Page:       parseIntQuery(c, "page", 1),
		Limit:      parseIntQuery(c, "limit", 10),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		Department: c.Query("department"),
	}

	documents, pagination, err := dc.documentService.List(c.Request.Context(), claims, opts)
	if err != nil {
		utils.LogError("Failed to fetch documents", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents":  documents,
		"pagination": pagination,
	})
}

func (dc *DocumentController) Create(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	flags, err := dc.permissionService.Resolve(c.Request.Context(), claims.Department, claims.Role, models.ModuleDocuments)
	if err != nil {
		utils.LogError("Permission check failed", err)
		utils.InternalServerErrorResponse(c, "Failed to create document")
		return
	}
	if !flags.CanWrite {
		utils.ForbiddenResponse(c, "You do not have permission to create documents")
		return
	}

	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Title is required")
		return
	}

	document, err := dc.documentService.Create(c.Request.Context(), claims, services.CreateDocumentInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		Department:  req.Department,
	}, dc.defaultDepartment)
	if err != nil {
		utils.LogError("Failed to create document", err)
		utils.InternalServerErrorResponse(c, "Failed to create document")
		return
	}

	recordAudit(c, dc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionCreateDocument,
		Resource:   "Document",
		ResourceID: document.ID.Hex(),
		NewValues:  document,
	})

	c.JSON(http.StatusCreated, gin.H{"document": document})
}

func (dc *DocumentController) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	flags, err := dc.permissionService.Resolve(c.Request.Context(), claims.Department, claims.Role, models.ModuleDocuments)
	if err != nil {
		utils.LogError("Permission check failed", err)
		utils.InternalServerErrorResponse(c, "Failed to delete document")
		return
	}
	if !flags.CanDelete {
		utils.ForbiddenResponse(c, "You do not have permission to delete documents")
		return
	}

	document, err := dc.documentService.Delete(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Document not found")
			return
		}
		utils.LogError("Failed to delete document", err)
		utils.InternalServerErrorResponse(c, "Failed to delete document")
		return
	}

	recordAudit(c, dc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionDeleteDocument,
		Resource:   "Document",
		ResourceID: document.ID.Hex(),
		OldValues:  document,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
