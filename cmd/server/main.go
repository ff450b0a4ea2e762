package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gallery/backend/internal/config"
	"gallery/backend/internal/database"
	"gallery/backend/internal/logging"
	"gallery/backend/internal/metrics"
	"gallery/backend/internal/server"
	"gallery/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// @title           Gallery API
// @version         1.0
// @description     Read-only API for browsing photo galleries, their tags and similar galleries.
// @host            localhost:8080
// @BasePath        /api
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logging.Fatal().Err(err).Msg("unable to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid database configuration")
	}

	// The pool dials on the first request.
	pool := database.New(cfg)
	defer func() {
		if err := pool.Close(); err != nil {
			logging.Error().Err(err).Msg("closing database pool")
		}
	}()

	metrics.Initialize(store.Operations...)

	router := server.NewRouter(server.Options{
		Store:   store.New(pool),
		Health:  pool,
		Metrics: cfg.MetricsEnabled,
		Swagger: cfg.SwaggerEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.ServerAddr, router, cfg.ServerShutdownTimeout); err != nil {
		logging.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
