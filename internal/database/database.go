package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"homeserve/internal/domain"
)

// Connect opens PostgreSQL when the DSN looks like a postgres URL and falls
// back to SQLite (pure-Go driver) for local development and tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates or updates the schema for every persisted entity,
// including the composite unique index guarding booking slots.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.PasswordResetToken{},
		&domain.Service{},
		&domain.WorkItem{},
		&domain.ServiceImage{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Reply{},
		&domain.ContactMessage{},
		&domain.BusinessCategory{},
		&domain.PopularBusiness{},
	)
}
