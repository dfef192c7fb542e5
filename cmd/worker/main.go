package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"adaptly/internal/adaptation"
	"adaptly/internal/config"
	"adaptly/internal/currency"
	"adaptly/internal/logger"
	"adaptly/internal/store"
	"adaptly/internal/worker"
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
	db, err := store.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}

	// Currency rates: compiled-in defaults unless an override file is set
	rates := currency.Default()
	if cfg.CurrencyRatesPath != "" {
		rates, err = currency.Load(cfg.CurrencyRatesPath)
		if err != nil {
			logger.Fatal("Failed to load currency rates: %v", err)
		}
	}

	// Initialize adaptation engine and worker
	engine := adaptation.NewEngine(adaptation.NewRegistry(), rates, logger)
	w := worker.New(cfg, logger, engine, db)

	// Start worker
	logger.Info("Starting worker...")
	go w.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	w.Stop()
}
