package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"assetvault/utils"
)

const claimsContextKey = "claims"

// AuthMiddleware authenticates the request from its bearer token. Handlers
// behind it never run without verified claims in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token, jwtSecret)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("department", claims.Department)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(authHeader[len(bearerPrefix):])
}

// CurrentClaims returns the claims attached by AuthMiddleware, or nil when the
// request was not authenticated.
func CurrentClaims(c *gin.Context) *utils.Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*utils.Claims)
	return claims
}

// RequireRole gates a route group on a role allow-list. It must be registered
// after AuthMiddleware so authentication always precedes the role check.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			utils.UnauthorizedResponse(c, "Unauthorized")
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Forbidden")
		c.Abort()
	}
}
