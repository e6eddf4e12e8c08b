package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	apierrors "github.com/yukikurage/hackathon-hub/internal/errors"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"github.com/yukikurage/hackathon-hub/internal/storage"
	"github.com/yukikurage/hackathon-hub/internal/utils"
	"go.uber.org/zap"
)

// ClientStorageOptions configures ClientStorage.
type ClientStorageOptions struct {
	// Backend holds every client's keys. A nil backend leaves clients without storage.
	Backend storage.Backend
	// SeedSamples stores sample hackathons for clients that have none.
	SeedSamples bool
	Log         *zap.Logger
}

// ClientPrefix returns the key prefix of a client's storage.
func ClientPrefix(clientID string) string {
	return constants.ClientKeyPrefix + ":" + clientID
}

// ClientStorage resolves the calling browser's storage and puts a workspace
// over it into the context. Clients are told apart by a random ID kept in the
// session cookie.
func ClientStorage(opts ClientStorageOptions) gin.HandlerFunc {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		session := sessions.Default(c)
		clientID, _ := session.Get(constants.SessionKeyClientID).(string)

		if clientID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				log.Error("generate client id", zap.Error(err))
				apierrors.InternalError(c, "Failed to initialize client storage")
				c.Abort()
				return
			}
			clientID = id
			session.Set(constants.SessionKeyClientID, clientID)
			if err := session.Save(); err != nil {
				log.Error("save session", zap.Error(err))
				apierrors.InternalError(c, "Failed to save session")
				c.Abort()
				return
			}
		}

		var store *storage.LocalStorage
		if opts.Backend != nil {
			store = storage.New(storage.Prefixed(opts.Backend, ClientPrefix(clientID)))
		} else {
			store = storage.New(nil)
		}
		ws := services.NewWorkspace(store)

		if opts.SeedSamples {
			if seeded, err := ws.Seed.SeedSamples(); err != nil {
				log.Warn("seed sample hackathons", zap.String("client_id", clientID), zap.Error(err))
			} else if seeded {
				log.Debug("seeded sample hackathons", zap.String("client_id", clientID))
			}
		}

		c.Set(constants.ContextKeyWorkspace, ws)
		c.Next()
	}
}

// GetWorkspace retrieves the client's workspace from context
func GetWorkspace(c *gin.Context) (*services.Workspace, bool) {
	value, exists := c.Get(constants.ContextKeyWorkspace)
	if !exists {
		return nil, false
	}
	ws, ok := value.(*services.Workspace)
	return ws, ok
}
