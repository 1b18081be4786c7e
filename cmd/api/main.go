package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-management/config"
	_ "task-management/docs" // Swagger docs
	"task-management/internal/httpserver"
	"task-management/internal/task/repository/rest"
	"task-management/internal/task/usecase"
	"task-management/pkg/log"
)

// @title       Task Management API
// @description Browser-facing gateway over the task REST API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task API: %s", cfg.TaskAPI.BaseURL)

	// 3. Task domain
	client := rest.NewClient(cfg.TaskAPI.BaseURL)
	taskRepo := rest.New(client, logger)
	taskUC := usecase.New(logger, taskRepo)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskUseCase:     taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
