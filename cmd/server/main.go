package main

import (
	"fmt"

	"wims/internal/config"
	"wims/internal/database"
	"wims/internal/logger"
	"wims/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogFile)
	defer logger.L.Sync()

	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.L.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L.Fatal("server error", zap.Error(err))
	}
}
