package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sheetsync/internal/api"
	"sheetsync/internal/config"
	"sheetsync/internal/database"
	"sheetsync/internal/logger"
	"sheetsync/internal/syncer"

	"github.com/spf13/afero"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize database
	db, err := database.New(cfg.DatabaseURL, cfg.LogLevel)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	components, err := syncer.Build(cfg, db.DB, afero.NewOsFs(), logger)
	if err != nil {
		logger.Fatal("Failed to initialize sync: %v", err)
	}

	if cfg.WebhookSecret == "" {
		logger.Warn("WEBHOOK_SECRET is not set; /sync-from-sheet accepts unsigned requests")
	}

	// Initialize API server
	server := api.New(cfg, logger, components)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}
