package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-management/config"
	"task-management/internal/devserver"
	"task-management/pkg/log"
)

// main runs the reference task REST backend on /api/tasks.
func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting dev server (storage=%s)...", cfg.DevServer.Storage)

	store, err := devserver.OpenStore(ctx, cfg.DevServer.Storage, cfg.DevServer.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		os.Exit(1)
	}

	srv, err := devserver.New(logger, store, devserver.Config{
		Port:           cfg.DevServer.Port,
		AllowedOrigins: cfg.DevServer.AllowedOrigins,
	})
	if err != nil {
		store.Close()
		logger.Error(ctx, "Failed to initialize dev server: ", err)
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "Dev server failed: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Dev server stopped gracefully")
}
