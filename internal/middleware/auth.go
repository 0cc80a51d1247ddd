package middleware

import (
	"strings"

	"github.com/NBFYayI/Todo/internal/constants"
	apierrors "github.com/NBFYayI/Todo/internal/errors"
	"github.com/NBFYayI/Todo/internal/services"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// RequireAuth resolves the caller from the Authorization header and stores
// the user ID in the request context.
func RequireAuth(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := userService.ResolveCaller(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
