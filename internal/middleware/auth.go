package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fablite/fablite/internal/auth/token"
)

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "auth_user_id"

// Auth returns a middleware that resolves a bearer token to a user identity.
// Requests without a valid token are rejected with 401 before the handler runs.
func Auth(tokens *token.Manager, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing authorization token",
			})
			return
		}

		userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debugw("token rejected", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
