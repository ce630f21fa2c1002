// Package database manages the GORM connection and schema.
package database

import (
	"fmt"
	"time"

	"fitledger/internal/logger"
	"fitledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager handles database operations.
type Manager struct {
	db *gorm.DB
}

// NewManager opens a PostgreSQL connection with sane pool defaults.
func NewManager(dsn string) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Required for connection poolers like Supavisor
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate brings the schema up to date for all registered models.
func (m *Manager) Migrate() error {
	logger.Get().Info("Running schema migration...")
	if err := m.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	logger.Get().Info("Schema migration completed")
	return nil
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
