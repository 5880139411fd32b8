package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID is the Gin context key holding the authenticated
// user's id.
const ContextKeyUserID = "auth_user_id"

// RequireAuth returns a middleware that rejects requests without a
// valid bearer token. The token is resolved to a live user on every
// request; the user id is injected into the context for handlers.
func RequireAuth(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		user, err := service.ResolveToken(parts[1])
		if err != nil {
			message := "invalid token"
			if err == ErrTokenExpired {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
// It is zero only on routes that skipped RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	if v, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
