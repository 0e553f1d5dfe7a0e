package main

import (
	"context"
	"paradise/config"
	"paradise/di"
	"paradise/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.HTTP.Serve(); err != nil {
		logger.ErrorWithStack(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := app.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
