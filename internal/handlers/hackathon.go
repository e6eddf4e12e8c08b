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

// HackathonHandler handles hackathon listing and host management.
type HackathonHandler struct {
	log     *zap.Logger
	advisor *services.CategoryAdvisor
}

// NewHackathonHandler creates a new HackathonHandler. advisor may be nil.
func NewHackathonHandler(log *zap.Logger, advisor *services.CategoryAdvisor) *HackathonHandler {
	return &HackathonHandler{
		log:     orNop(log),
		advisor: advisor,
	}
}

type hackathonRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
	BannerURL   string `json:"bannerUrl"`
	FormLink    string `json:"formLink" binding:"required,url"`
}

func (r hackathonRequest) input() services.HackathonInput {
	return services.HackathonInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		BannerURL:   r.BannerURL,
		FormLink:    r.FormLink,
	}
}

// ListHackathons lists hackathons, optionally filtered by host or category.
// mine=true restricts the list to the session user's own hackathons.
func (h *HackathonHandler) ListHackathons(c *gin.Context) {
	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	filter := services.HackathonFilter{
		HostID:   c.Query("host"),
		Category: c.Query("category"),
	}

	if c.Query("mine") == "true" {
		user, err := ws.Auth.CurrentUser()
		if err != nil {
			respondServiceError(c, h.log, err)
			return
		}
		if user == nil {
			apierrors.Unauthorized(c, "")
			return
		}
		filter.HostID = user.ID
	}

	hackathons, err := ws.Hackathons.List(filter)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHackathonListResponse(hackathons))
}

// GetHackathon returns a hackathon with its participants and whether the
// session user has joined it.
func (h *HackathonHandler) GetHackathon(c *gin.Context) {
	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	hackathon, err := ws.Hackathons.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	user, err := ws.Auth.CurrentUser()
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}
	joined, err := ws.Participation.Status(user, hackathon.ID)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.HackathonDetailDTO{
		HackathonDTO: dto.ToHackathonDTO(*hackathon),
		Joined:       joined,
	})
}

// CreateHackathon creates a hackathon hosted by the session user.
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req hackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	hackathon, err := ws.Hackathons.Create(user, req.input())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info("hackathon created", zap.String("hackathon_id", hackathon.ID), zap.String("host_id", user.ID))
	c.JSON(http.StatusCreated, dto.ToHackathonDTO(*hackathon))
}

// UpdateHackathon replaces the editable fields of a hackathon the session
// user hosts.
func (h *HackathonHandler) UpdateHackathon(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req hackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	hackathon, err := ws.Hackathons.Update(user, c.Param("id"), req.input())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHackathonDTO(*hackathon))
}

// DeleteHackathon removes a hackathon the session user hosts.
func (h *HackathonHandler) DeleteHackathon(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := ws.Hackathons.Delete(user, id); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info("hackathon deleted", zap.String("hackathon_id", id), zap.String("host_id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Hackathon deleted successfully",
	})
}

// ListCategories returns the suggested categories.
func (h *HackathonHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.Categories(),
	})
}

// SuggestCategory asks the category advisor for a title and description.
func (h *HackathonHandler) SuggestCategory(c *gin.Context) {
	type SuggestRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.advisor.SuggestCategory(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}
