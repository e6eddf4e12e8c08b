package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	apierrors "github.com/yukikurage/hackathon-hub/internal/errors"
	"github.com/yukikurage/hackathon-hub/internal/middleware"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"go.uber.org/zap"
)

func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, codec.ErrMalformedRecord):
		log.Warn("malformed client storage", zap.Error(err))
		apierrors.MalformedStorage(c, err.Error())
	case errors.Is(err, services.ErrHackathonNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrHostOnly):
		apierrors.HostOnly(c, err.Error())
	case errors.Is(err, services.ErrNotHackathonHost):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAuthenticationNeeded):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrInvalidHackathon),
		errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrInvalidRole):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAdvisorNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		apierrors.InternalError(c, "Internal server error")
	}
}

// clientWorkspace returns the workspace set up by middleware.ClientStorage.
func clientWorkspace(c *gin.Context) (*services.Workspace, bool) {
	ws, ok := middleware.GetWorkspace(c)
	if !ok {
		apierrors.InternalError(c, "Client storage not initialized")
	}
	return ws, ok
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
