package routes

import (
	"github.com/gin-gonic/gin"

	"assetvault/controllers"
	"assetvault/middleware"
)

func RegisterDashboardRoutes(rg *gin.RouterGroup, container *ServiceContainer) {
	dashboardController := controllers.NewDashboardController(container.DashboardService)

	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(container.JWTSecret))
	{
		dashboard.GET("/stats", dashboardController.Stats)
	}
}
