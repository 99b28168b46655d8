package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
	"assetvault/models"
)

func RegisterCategoryRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	categoryController := controllers.NewCategoryController(
		container.CategoryService,
		container.AuditService,
	)

	categories := rg.Group("/categories")
	categories.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		categories.GET("", categoryController.List)

		// Taxonomy mutations are reserved for administrators.
		admin := categories.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("", categoryController.Create)
			admin.PUT("/:id", categoryController.Update)
			admin.DELETE("/:id", categoryController.Delete)
		}
	}
}
