package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
)

func RegisterDocumentRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	documentController := controllers.NewDocumentController(
		container.DocumentService,
		container.PermissionService,
		container.AuditService,
		container.DefaultDepartment,
	)

	documents := rg.Group("/documents")
	documents.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		documents.GET("", documentController.List)
		documents.POST("", documentController.Create)
		documents.DELETE("/:id", documentController.Delete)
	}
}
