package main

import (
	"log"

	"adaptly/internal/adaptation"
	"adaptly/internal/api"
	"adaptly/internal/config"
	"adaptly/internal/currency"
	"adaptly/internal/logger"
	"adaptly/internal/store"
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
	logger.Info("Using currency rate table %s", rates.Version)

	// Initialize adaptation engine
	engine := adaptation.NewEngine(adaptation.NewRegistry(), rates, logger)

	// Initialize API server
	server := api.New(cfg, logger, db, engine)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
