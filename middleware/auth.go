package middleware

import (
	"net/http"
	"strings"

	"realestate-backend/services"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the admin surface. It expects a Bearer token issued by
// the auth service and stores the verified claims on the context.
func RequireAdmin(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing bearer token",
			})
			return
		}

		claims, err := authSvc.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
