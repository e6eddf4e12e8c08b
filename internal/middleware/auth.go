package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	apierrors "github.com/yukikurage/hackathon-hub/internal/errors"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"go.uber.org/zap"
)

// RequireAuth checks that the client has a signed-in session user
func RequireAuth(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		ws, ok := GetWorkspace(c)
		if !ok {
			apierrors.InternalError(c, "Client storage not initialized")
			c.Abort()
			return
		}

		user, err := ws.Auth.CurrentUser()
		if err != nil {
			if errors.Is(err, codec.ErrMalformedRecord) {
				apierrors.MalformedStorage(c, constants.StorageKeyCurrentUser)
			} else {
				log.Error("load session user", zap.Error(err))
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}
		if user == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store user in context for easy access in handlers
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireHost rejects users whose role is not host. It must run after RequireAuth.
func RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := GetCurrentUser(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !user.IsHost() {
			apierrors.HostOnly(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
