package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
)

func RegisterAuthRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	authController := controllers.NewAuthController(
		container.AuthService,
		container.JWTSecret,
		container.JWTExpiration,
		container.JWTIssuer,
	)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(container.JWTSecret), authController.Me)
	}
}
