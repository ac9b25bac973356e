package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyabe/wordvault/internal/app"
	"github.com/ilyabe/wordvault/internal/config"
	"github.com/ilyabe/wordvault/internal/logging"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.Session.Token != "" {
		if _, err := a.Login(cfg.Session.Token); err != nil {
			logger.Error(ctx, "failed to apply session token", "error", err)
		}
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
