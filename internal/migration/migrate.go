package migration

import (
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all application tables.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.Favorite{},
		&domain.Message{},
	)
}
