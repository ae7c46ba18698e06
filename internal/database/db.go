package database

import (
	"log"
	"time"

	"vendor-registry/internal/config"
	"vendor-registry/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// SuperAdminUsername is the one username allowed to manage other admins.
// Init overwrites it from config.
var SuperAdminUsername = "admin"

func Init(cfg *config.Config) {
	var err error

	DB, err = open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}

	if err := DB.AutoMigrate(&models.Vendor{}, &models.Admin{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SuperAdminUsername = cfg.SuperAdminUser
	if err := EnsureSuperAdmin(cfg.SuperAdminPass); err != nil {
		log.Fatalf("failed to seed super admin: %v", err)
	}
}

// open picks postgres when a DSN is configured, otherwise the local
// sqlite file. TranslateError lets callers match unique-constraint
// violations as gorm.ErrDuplicatedKey regardless of driver.
func open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	if cfg.DBDSN != "" {
		// postgres may still be starting alongside the app
		const maxAttempts = 10
		var db *gorm.DB
		var err error
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to postgres (attempt %d/%d)...", i, maxAttempts)
			db, err = gorm.Open(postgres.Open(cfg.DBDSN), gormCfg)
			if err == nil {
				return db, nil
			}
			time.Sleep(2 * time.Second)
		}
		return nil, err
	}

	log.Printf("opening sqlite database at %s", cfg.DBPath)
	return gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
}
