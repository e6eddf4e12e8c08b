package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/dto"
	apierrors "github.com/yukikurage/hackathon-hub/internal/errors"
	"github.com/yukikurage/hackathon-hub/internal/middleware"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"go.uber.org/zap"
)

// ParticipationHandler handles joining and leaving hackathons.
type ParticipationHandler struct {
	log *zap.Logger
}

// NewParticipationHandler creates a new ParticipationHandler.
func NewParticipationHandler(log *zap.Logger) *ParticipationHandler {
	return &ParticipationHandler{
		log: orNop(log),
	}
}

func (h *ParticipationHandler) prepare(c *gin.Context) (*services.Workspace, *models.User, bool) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, nil, false
	}
	ws, ok := clientWorkspace(c)
	if !ok {
		return nil, nil, false
	}
	return ws, user, true
}

// GetStatus reports whether the session user has joined the hackathon.
func (h *ParticipationHandler) GetStatus(c *gin.Context) {
	ws, user, ok := h.prepare(c)
	if !ok {
		return
	}

	id := c.Param("id")
	joined, err := ws.Participation.Status(user, id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipationDTO{HackathonID: id, Joined: joined})
}

// Join adds the session user to the hackathon.
func (h *ParticipationHandler) Join(c *gin.Context) {
	ws, user, ok := h.prepare(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := ws.Participation.Join(user, id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipationDTO{HackathonID: id, Joined: true})
}

// Leave removes the session user from the hackathon.
func (h *ParticipationHandler) Leave(c *gin.Context) {
	ws, user, ok := h.prepare(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := ws.Participation.Leave(user, id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipationDTO{HackathonID: id, Joined: false})
}

// Toggle joins or leaves the hackathon depending on the current state.
func (h *ParticipationHandler) Toggle(c *gin.Context) {
	ws, user, ok := h.prepare(c)
	if !ok {
		return
	}

	id := c.Param("id")
	joined, err := ws.Participation.Toggle(user, id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ParticipationDTO{HackathonID: id, Joined: joined})
}

// ListJoined returns the hackathons the session user has joined.
func (h *ParticipationHandler) ListJoined(c *gin.Context) {
	ws, user, ok := h.prepare(c)
	if !ok {
		return
	}

	hackathons, err := ws.Participation.ListJoined(user)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHackathonListResponse(hackathons))
}
