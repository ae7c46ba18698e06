package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// insecureSessionSecret keeps the app runnable with zero configuration.
// Never deploy with it.
const insecureSessionSecret = "replace-this-secret-in-production"

type Config struct {
	DBDSN          string // postgres DSN; when empty the app uses the sqlite file at DBPath
	DBPath         string
	ServerPort     string
	SessionSecret  string
	SuperAdminUser string
	SuperAdminPass string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		DBPath:         os.Getenv("DB_PATH"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SuperAdminUser: os.Getenv("ADMIN_USERNAME"),
		SuperAdminPass: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "vendors.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is not set, using insecure development default")
		cfg.SessionSecret = insecureSessionSecret
	}
	if cfg.SuperAdminUser == "" {
		cfg.SuperAdminUser = "admin"
	}
	if cfg.SuperAdminPass == "" {
		cfg.SuperAdminPass = "admin123"
	}

	return cfg
}
