package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens (or returns the cached) GORM connection using the
// configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Booking{},
		&models.ChatRequest{},
		&models.Message{},
		&models.Resource{},
		&models.Blog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("Database migration completed")
	return nil
}
