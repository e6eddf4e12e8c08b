package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"go.uber.org/zap"
)

// StorageHandler manages the client's stored data as a whole.
type StorageHandler struct {
	log *zap.Logger
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(log *zap.Logger) *StorageHandler {
	return &StorageHandler{
		log: orNop(log),
	}
}

// Reset removes every key the client owns, including a malformed one.
func (h *StorageHandler) Reset(c *gin.Context) {
	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	if err := ws.Reset(); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Storage reset",
		"keys":    services.StorageKeys(),
	})
}
