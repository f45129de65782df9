package database

import (
	"time"

	"wims/internal/logger"
	"wims/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		logger.L.Info("trying to connect to DB",
			zap.Int("attempt", i), zap.Int("max_attempts", maxAttempts))

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logger.L.Info("connected to DB successfully")
			break
		}

		logger.L.Warn("failed to connect to DB", zap.Error(err))
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		logger.L.Fatal("giving up connecting to DB",
			zap.Int("attempts", maxAttempts), zap.Error(err))
	}

	// all tables live in the usr schema
	if err := DB.Exec("CREATE SCHEMA IF NOT EXISTS usr").Error; err != nil {
		logger.L.Fatal("failed to create schema", zap.Error(err))
	}

	if err := DB.AutoMigrate(
		&models.Department{},
		&models.User{},
	); err != nil {
		logger.L.Fatal("failed to migrate", zap.Error(err))
	}
}
