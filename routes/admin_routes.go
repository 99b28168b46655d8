package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
	"assetvault/models"
)

// RegisterAdminRoutes wires user management and the audit log view, both
// restricted to the administrative role.
func RegisterAdminRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	userController := controllers.NewUserController(container.AuthService, container.AuditService)
	auditController := controllers.NewAuditController(container.AuditService)

	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(container.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", userController.List)
		users.POST("", userController.Create)
	}

	audit := rg.Group("/audit")
	audit.Use(middleware.AuthMiddleware(container.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		audit.GET("", auditController.List)
	}
}
