package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostdeck/config"
	"hostdeck/di"
	"hostdeck/helper"
	"hostdeck/shared/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const releaseTimeout = 10 * time.Second

// @title hostdeck API
// @version 1.0
// @description Property management dashboard for short-term rental hosts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	app, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instanceID, err := os.Hostname()
	if err != nil {
		instanceID = uuid.NewString()
	}

	go app.Consumer.Run(ctx, instanceID)

	if err = app.HTTP.Serve(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}

	releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err = app.Kafka.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close kafka client")
	}

	if err = app.Otel.Shutdown(releaseCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to flush traces")
	}
}
