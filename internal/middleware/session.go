package middleware

import (
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionKey  = "session"
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// Sessions loads the request's session, if any, into the gin context.
func Sessions(manager *session.Manager, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := manager.Load(c)
		if err != nil {
			log.Errorw("Failed to load session", "error", err, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if sess != nil {
			c.Set(SessionKey, sess)
			c.Set(UserIDKey, sess.UserID)
			c.Set(UserRoleKey, sess.UserRole)
		}
		c.Next()
	}
}

// CurrentSession returns the session loaded by Sessions, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
