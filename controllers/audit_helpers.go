package controllers

import (
	"github.com/gin-gonic/gin"

	"assetvault/services"
	"assetvault/utils"
)

// recordAudit appends an audit entry with origin metadata best-effort. A
// failed append is logged and never surfaces to the client.
func recordAudit(c *gin.Context, auditService *services.AuditService, entry services.AuditEntry) {
	entry.IPAddress = clientIP(c)
	entry.UserAgent = userAgent(c)

	if err := auditService.Record(c.Request.Context(), entry); err != nil {
		utils.LogError("Failed to record audit log", err)
	}
}

func clientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

func userAgent(c *gin.Context) string {
	if ua := c.Request.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}
