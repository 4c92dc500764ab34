package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/orgball2608/motivate-ai/internal/app"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootLog := logger.New(logger.Opts{Env: cfg.App.Env})

	application := fx.New(
		fx.Logger(bootLog),
		app.Module(cfg),
	)

	if err := application.Start(context.Background()); err != nil {
		bootLog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := application.Stop(context.Background()); err != nil {
		bootLog.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
