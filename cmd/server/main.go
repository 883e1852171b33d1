package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartoffice/room-booking-api/internal/api"
	"github.com/smartoffice/room-booking-api/internal/infrastructure/config"
	"github.com/smartoffice/room-booking-api/internal/infrastructure/db/postgres"
	redisdb "github.com/smartoffice/room-booking-api/internal/infrastructure/db/redis"
	"github.com/smartoffice/room-booking-api/pkg/logger"
)

func main() {
	// Populate the environment from .env when present. Real deployments
	// set variables directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	db, err := postgres.Open(cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redisdb.NewClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}
	log.Info().Msg("server stopped")
}
