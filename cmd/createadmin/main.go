package main

import (
	"os"

	"wims/internal/config"
	"wims/internal/database"
	"wims/internal/logger"

	"go.uber.org/zap"
)

// First-run bootstrap: creates the seed admin account if it does not exist.
func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogFile)
	defer logger.L.Sync()

	loginID := os.Getenv("ADMIN_LOGIN_ID")
	if loginID == "" {
		loginID = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin_password"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	database.Init(cfg.DBDSN)

	created, err := database.EnsureAdmin(loginID, password, email)
	if err != nil {
		logger.L.Fatal("failed to create admin", zap.Error(err))
	}
	if !created {
		logger.L.Info("admin already exists, nothing to do",
			zap.String("login_id", loginID))
		return
	}
	logger.L.Info("admin account created", zap.String("login_id", loginID))
}
