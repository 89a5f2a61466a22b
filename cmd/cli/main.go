package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tradedash/internal/buildinfo"
	"github.com/dmitrijs2005/tradedash/internal/client/cli"
	"github.com/dmitrijs2005/tradedash/internal/client/config"
	"github.com/dmitrijs2005/tradedash/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "run", "error", err)
	}
}
