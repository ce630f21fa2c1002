// Command mailsync runs one mail import pass from the command line, for
// cron jobs and local debugging.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fitledger/internal/config"
	"fitledger/internal/crypto"
	"fitledger/internal/database"
	"fitledger/internal/logger"
	"fitledger/internal/mailfetch"
	"fitledger/internal/services"
)

const syncTimeout = 5 * time.Minute

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	cipher, err := crypto.New(cfg.SecretKey)
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	db := dbManager.DB()
	expenseService := services.NewExpenseService(db)
	settingsService := services.NewMailSettingsService(db, cipher)
	syncService := services.NewMailSyncService(settingsService, expenseService, mailfetch.NewIMAPFetcher())

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	result, err := syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	log.Infow("sync complete",
		"fetched", result.Fetched,
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return nil
}
