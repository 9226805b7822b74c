package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"yolearn/internal/app"
	"yolearn/internal/config"
	"yolearn/internal/observability"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		logger.Error("[Server] bootstrap failed", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("[Server] cleanup error", zap.Error(err))
		}
	}()

	if err := bootstrap.Run(ctx); err != nil {
		logger.Error("[Server] stopped with error", zap.Error(err))
		return
	}
	logger.Info("[Server] stopped")
}
