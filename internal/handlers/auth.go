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

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		log: orNop(log),
	}
}

// Signup registers a new account and signs it in.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name" binding:"required,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"omitempty,oneof=host participant"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	user, err := ws.Auth.SignUp(services.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.UserRole(req.Role),
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info("account created", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates an account and makes it the session user.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	user, err := ws.Auth.SignIn(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Logout clears the session user. The client's other data stays.
func (h *AuthHandler) Logout(c *gin.Context) {
	ws, ok := clientWorkspace(c)
	if !ok {
		return
	}

	if err := ws.Auth.SignOut(); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
