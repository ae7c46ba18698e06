package database

import (
	"testing"

	"vendor-registry/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Vendor{}, &models.Admin{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = db
	SuperAdminUsername = "admin"
}
