package middleware

import (
	"net/http"

	"taskflow/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a session user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UserIDKey) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireRole allows only sessions whose role, as captured at login, is in
// roles. Missing sessions get 401, other roles 403.
func RequireRole(log *logger.Logger, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		userID := c.GetString(UserIDKey)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		role := c.GetString(UserRoleKey)
		if !allowed[role] {
			log.LogSecurityEvent("insufficient_permissions", userID, c.ClientIP(), map[string]interface{}{
				"required_roles": roles,
				"user_role":      role,
				"endpoint":       c.FullPath(),
				"method":         c.Request.Method,
			})
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
