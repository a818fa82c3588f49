package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"sheetsync/internal/config"
	"sheetsync/internal/database"
	"sheetsync/internal/logger"
	"sheetsync/internal/syncer"
	"sheetsync/internal/worker"
	"sheetsync/internal/worker/processors"

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

	// Initialize worker
	processor := processors.NewEventProcessor(components.Products, components.Orchestrator, logger)
	w := worker.New(worker.NewReader(cfg), processor, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start worker
	logger.Info("Starting worker on topic %s (group %s)", cfg.KafkaTopic, cfg.KafkaGroupID)
	if err := w.Start(ctx); err != nil {
		logger.Error("Worker stopped: %v", err)
	}

	logger.Info("Shutting down worker...")
	if err := w.Stop(); err != nil {
		logger.Error("Failed to close reader: %v", err)
	}
}
