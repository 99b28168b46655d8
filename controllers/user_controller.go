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

type UserController struct {
	authService  *services.AuthService
	auditService *services.AuditService
}

type createUserRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

func NewUserController(authService *services.AuthService, auditService *services.AuditService) *UserController {
	return &UserController{
		authService:  authService,
		auditService: auditService,
	}
}

func (uc *UserController) List(c *gin.Context) {
	users, pagination, err := uc.authService.ListUsers(c.Request.Context(),
		parseIntQuery(c, "page", 1),
		parseIntQuery(c, "limit", 10),
	)
	if err != nil {
		utils.LogError("Failed to fetch users", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
	})
}

func (uc *UserController) Create(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email, password and first name are required")
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		utils.BadRequestResponse(c, "Invalid role. Must be ADMIN or USER")
		return
	}

	user, err := uc.authService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       role,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			utils.ConflictResponse(c, "A user with this email already exists")
			return
		}
		utils.LogError("Failed to create user", err)
		utils.InternalServerErrorResponse(c, "Failed to create user")
		return
	}

	recordAudit(c, uc.auditService, services.AuditEntry{
		UserID:     claims.UserID,
		Action:     services.ActionCreateUser,
		Resource:   "User",
		ResourceID: user.ID.Hex(),
		NewValues:  user,
	})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}
