package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/middleware"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"go.uber.org/zap"
)

// RouterOptions configures RegisterRoutes.
type RouterOptions struct {
	Log     *zap.Logger
	Advisor *services.CategoryAdvisor
	Storage middleware.ClientStorageOptions
}

// RegisterRoutes mounts the health check and the API on r. The session
// middleware must already be installed.
func RegisterRoutes(r *gin.Engine, opts RouterOptions) {
	log := orNop(opts.Log)
	if opts.Storage.Log == nil {
		opts.Storage.Log = log
	}

	authHandler := NewAuthHandler(log)
	hackathonHandler := NewHackathonHandler(log, opts.Advisor)
	participationHandler := NewParticipationHandler(log)
	storageHandler := NewStorageHandler(log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hackathon Hub API is running",
		})
	})

	// Banners are static; they do not touch client storage.
	r.GET("/api/placeholder", Placeholder)

	api := r.Group("/api")
	api.Use(middleware.ClientStorage(opts.Storage))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(log), authHandler.GetCurrentUser)
		}

		api.GET("/categories", hackathonHandler.ListCategories)
		api.POST("/categories/suggest", hackathonHandler.SuggestCategory)

		hackathons := api.Group("/hackathons")
		{
			hackathons.GET("", hackathonHandler.ListHackathons)
			hackathons.GET("/:id", hackathonHandler.GetHackathon)
			hackathons.POST("", middleware.RequireAuth(log), middleware.RequireHost(), hackathonHandler.CreateHackathon)
			hackathons.PUT("/:id", middleware.RequireAuth(log), middleware.RequireHost(), hackathonHandler.UpdateHackathon)
			hackathons.DELETE("/:id", middleware.RequireAuth(log), middleware.RequireHost(), hackathonHandler.DeleteHackathon)

			participation := hackathons.Group("/:id/participation")
			participation.Use(middleware.RequireAuth(log))
			{
				participation.GET("", participationHandler.GetStatus)
				participation.POST("", participationHandler.Join)
				participation.DELETE("", participationHandler.Leave)
				participation.POST("/toggle", participationHandler.Toggle)
			}
		}

		api.GET("/me/hackathons", middleware.RequireAuth(log), participationHandler.ListJoined)
		api.POST("/storage/reset", storageHandler.Reset)
	}
}
