package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
	"assetvault/models"
)

func RegisterPermissionRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	permissionController := controllers.NewPermissionController(
		container.PermissionService,
		container.AuditService,
	)

	permissions := rg.Group("/permissions")
	permissions.Use(middleware.AuthMiddleware(container.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		permissions.GET("", permissionController.List)
		permissions.POST("", permissionController.Upsert)
	}
}
