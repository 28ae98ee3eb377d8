package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/careerbridge/backend/internal/models"
)

// RunMigrations brings the schema up to date. The fixed two-table schema
// (plus auth identities) is managed through GORM auto-migration on both the
// Postgres and the sqlite test path.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running migrations (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Review{},
	)
}
