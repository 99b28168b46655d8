package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/services"
	"assetvault/utils"
)

type AuthController struct {
	authService   *services.AuthService
	jwtSecret     string
	jwtExpiration time.Duration
	jwtIssuer     string
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthController(authService *services.AuthService, jwtSecret string, jwtExpiration time.Duration, jwtIssuer string) *AuthController {
	return &AuthController{
		authService:   authService,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		jwtIssuer:     jwtIssuer,
	}
}

// Login handles POST /auth/login and issues the bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	user, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		utils.LogError("Login failed", err)
		utils.InternalServerErrorResponse(c, "Login failed")
		return
	}

	token, err := utils.GenerateToken(user, ac.jwtSecret, ac.jwtExpiration, ac.jwtIssuer)
	if err != nil {
		utils.LogError("Failed to generate token", err)
		utils.InternalServerErrorResponse(c, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /auth/me and returns the caller's current user row.
func (ac *AuthController) Me(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	user, err := ac.authService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, "User not found")
			return
		}
		utils.LogError("Failed to fetch user", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
