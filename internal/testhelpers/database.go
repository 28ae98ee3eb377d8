package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careerbridge/backend/internal/models"
)

// SetupTestDatabase creates an in-memory sqlite database with the full
// schema migrated
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		// Each test gets a fresh schema; shared cache would otherwise leak
		// rows between tests in the same process.
		db.Exec("DELETE FROM reviews")
		db.Exec("DELETE FROM profiles")
		db.Exec("DELETE FROM users")
	})

	return db
}
