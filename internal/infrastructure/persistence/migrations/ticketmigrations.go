package migrations

import (
	"gorm.io/gorm"

	"jellyfix/internal/infrastructure/persistence/models"
)

// MigrateTicketTables creates the tickets and comments tables if they
// do not exist yet. Safe to run on every startup.
func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
	)
}
