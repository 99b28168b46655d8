package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
)

func RegisterDigitalAssetRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	assetController := controllers.NewDigitalAssetController(
		container.AssetService,
		container.PermissionService,
		container.AuditService,
		container.DefaultDepartment,
		container.MaxPreviewFileSize,
	)

	assets := rg.Group("/digital-assets")
	assets.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		assets.GET("", assetController.List)
		assets.POST("", assetController.Create)
		assets.PATCH("", assetController.Permissions)
		assets.DELETE("/:id", assetController.Delete)
	}
}
