package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lezzetli-tarifler/backend/config"
	"github.com/lezzetli-tarifler/backend/internal/api"
	"github.com/lezzetli-tarifler/backend/internal/database"
	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/metrics"
	"github.com/lezzetli-tarifler/backend/internal/middleware"
	"github.com/lezzetli-tarifler/backend/internal/router"
	"github.com/lezzetli-tarifler/backend/internal/service"
)

// Dependencies are the external resources the server runs on.
// Redis and S3 are optional.
type Dependencies struct {
	DB    *gorm.DB
	Redis *redis.Client
	S3    *config.S3Config
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New wires services, handlers and middleware into a server listening on cfg.Addr()
func New(cfg *config.Config, deps Dependencies) *Server {
	var revocations service.TokenRevocationStore
	if deps.Redis != nil {
		revocations = database.NewRedisRevocationStore(deps.Redis)
	}

	var images *service.ImageService
	if deps.S3 != nil {
		images = service.NewImageService(deps.S3, cfg.ImageURLTTL)
	}

	authService := service.NewAuthService(deps.DB, cfg.JWTSecret, cfg.TokenTTL, revocations)
	recipeService := service.NewRecipeService(deps.DB, images)
	favoriteService := service.NewFavoriteService(deps.DB, images)

	authMiddleware := middleware.AuthMiddleware(authService)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.SetupRouter(cfg.AllowedOrigins, metrics.New(reg), reg, router.Handlers{
		Health:   api.NewHealthHandler(deps.DB),
		Auth:     api.NewAuthHandler(authService, authMiddleware),
		Recipe:   api.NewRecipeHandler(recipeService),
		Favorite: api.NewFavoriteHandler(favoriteService, authMiddleware),
	})

	return &Server{
		router: r,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving requests until the server is shut down
func (s *Server) Start() error {
	logger.Logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
