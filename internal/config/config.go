package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	AppEnv        string
	LogFile       string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AppEnv:        os.Getenv("APP_ENV"),
		LogFile:       os.Getenv("LOG_FILE"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "dev"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "/var/log/wims.log"
	}

	return cfg
}
