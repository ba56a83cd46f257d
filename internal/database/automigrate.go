package database

import (
	"fmt"

	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes and the composite unique constraints backing the
// registration and attendance natural keys come from the struct tags.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Workshop{},
		&domain.Registration{},
		&domain.Attendance{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
