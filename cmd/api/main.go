package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lezzetli-tarifler/backend/config"
	"github.com/lezzetli-tarifler/backend/internal/database"
	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init("lezzetli-tarifler-api", cfg.IsDevelopment(), cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if redisClient == nil {
		logger.Logger.Warn().Msg("REDIS_URL not set, logged out tokens stay valid until they expire")
	} else {
		defer redisClient.Close()
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to configure image storage")
	}
	if s3Config == nil {
		logger.Logger.Info().Msg("S3_BUCKET_NAME not set, recipe image URLs will not be signed")
	}

	srv := server.New(cfg, server.Dependencies{
		DB:    db,
		Redis: redisClient,
		S3:    s3Config,
	})

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Logger.Error().Err(err).Msg("server error")
			return
		}
	case sig := <-quit:
		logger.Logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	logger.Logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("server shutdown error")
		return
	}
	logger.Logger.Info().Msg("server stopped")
}
