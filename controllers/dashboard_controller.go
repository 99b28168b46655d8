package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetvault/middleware"
	"assetvault/services"
	"assetvault/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Stats handles GET /dashboard/stats feeding the dashboard charts.
func (dc *DashboardController) Stats(c *gin.Context) {
	claims := middleware.CurrentClaims(c)

	stats, err := dc.dashboardService.Stats(c.Request.Context(), claims)
	if err != nil {
		utils.LogError("Failed to fetch dashboard stats", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
