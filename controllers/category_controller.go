package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/services"
	"assetvault/utils"
)

type CategoryController struct {
	categoryService *services.CategoryService
	auditService    *services.AuditService
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func NewCategoryController(categoryService *services.CategoryService, auditService *services.AuditService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		auditService:    auditService,
	}
}

// List handles GET /categories?type=ASSET|DOCUMENT|DEPARTMENT.
func (cc *CategoryController) List(c *gin.Context) {
	categoryType := c.Query("type")
	if err := utils.ValidateCategoryType(categoryType); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	categories, err := cc.categoryService.List(c.Request.Context(), categoryType)
	if err != nil {
		utils.LogError("Failed to fetch categories", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (cc *CategoryController) Create(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	categoryType := c.Query("type")
	if err := utils.ValidateCategoryType(categoryType); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Category name is required")
		return
	}
	if err := utils.ValidateCategoryName(req.Name); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), categoryType, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "A category with this name already exists")
			return
		}
		utils.LogError("Failed to create category", err)
		utils.InternalServerErrorResponse(c, "Failed to create category")
		return
	}

	recordAudit(c, cc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionCreateCategory,
		Resource:   "Category",
		ResourceID: category.ID.Hex(),
		NewValues:  category,
	})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

func (cc *CategoryController) Update(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Category name is required")
		return
	}
	if err := utils.ValidateCategoryName(req.Name); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	category, err := cc.categoryService.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Category not found")
			return
		}
		utils.LogError("Failed to update category", err)
		utils.InternalServerErrorResponse(c, "Failed to update category")
		return
	}

	recordAudit(c, cc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionUpdateCategory,
		Resource:   "Category",
		ResourceID: category.ID.Hex(),
		NewValues:  category,
	})

	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (cc *CategoryController) Delete(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	category, err := cc.categoryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "Category not found")
			return
		}
		utils.LogError("Failed to delete category", err)
		utils.InternalServerErrorResponse(c, "Failed to delete category")
		return
	}

	recordAudit(c, cc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionDeleteCategory,
		Resource:   "Category",
		ResourceID: category.ID.Hex(),
		OldValues:  category,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
