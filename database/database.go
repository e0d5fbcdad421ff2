// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventease-api/storage"
)

// Initialize opens the on-device SQLite file that backs the durable store.
// All application state lives in this single file; there is no remote
// database.
func Initialize(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&storage.Collection{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
