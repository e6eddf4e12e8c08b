package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/config"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/database"
	"github.com/yukikurage/hackathon-hub/internal/handlers"
	"github.com/yukikurage/hackathon-hub/internal/logger"
	"github.com/yukikurage/hackathon-hub/internal/middleware"
	"github.com/yukikurage/hackathon-hub/internal/services"
	"github.com/yukikurage/hackathon-hub/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	backend, closeBackend, err := openBackend(cfg, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			zl.Warn("close storage backend", zap.Error(err))
		}
	}()

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize category advisor
	var advisor *services.CategoryAdvisor
	if cfg.OpenAIAPIKey != "" {
		advisor = services.NewCategoryAdvisor(cfg.OpenAIAPIKey)
	}

	handlers.RegisterRoutes(r, handlers.RouterOptions{
		Log:     zl,
		Advisor: advisor,
		Storage: middleware.ClientStorageOptions{
			Backend:     backend,
			SeedSamples: cfg.SeedSamples,
			Log:         zl,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("storage", cfg.StorageBackend),
			zap.String("sessions", cfg.SessionBackend),
			zap.Bool("advisor", advisor != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// openBackend opens the store that holds every client's keys.
func openBackend(cfg *config.Config, zl *zap.Logger) (storage.Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageBackend {
	case "gorm":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		zl.Info("database connected", zap.String("driver", cfg.DBDriver))
		return storage.NewGormBackend(db), sqlDB.Close, nil
	case "bolt":
		backend, err := storage.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		zl.Info("bolt store opened", zap.String("path", cfg.BoltPath))
		return backend, backend.Close, nil
	case "redis":
		backend := storage.NewRedisBackend(storage.NewRedisPool(cfg.RedisAddr(), 10))
		zl.Info("redis store configured", zap.String("addr", cfg.RedisAddr()))
		return backend, backend.Close, nil
	case "memory":
		zl.Warn("using in-memory storage; data is lost on restart")
		return storage.NewMemoryBackend(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionBackend {
	case "redis":
		rs, err := redisStore.NewStore(
			10,              // Redis pool size
			"tcp",           // network type
			cfg.RedisAddr(), // Redis address from config
			"",              // username (empty for default user)
			"",              // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}
