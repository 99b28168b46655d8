package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assetvault/services"
	"assetvault/utils"
)

type AuditController struct {
	auditService *services.AuditService
}

func NewAuditController(auditService *services.AuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// List handles GET /audit for administrators. The listing is read-only; the
// application never edits audit rows.
func (ac *AuditController) List(c *gin.Context) {
	logs, pagination, err := ac.auditService.List(c.Request.Context(),
		parseIntQuery(c, "page", 1),
		parseIntQuery(c, "limit", 10),
	)
	if err != nil {
		utils.LogError("Failed to fetch audit logs", err)
		utils.InternalServerErrorResponse(c, "Failed to fetch audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"auditLogs":  logs,
		"pagination": pagination,
	})
}
