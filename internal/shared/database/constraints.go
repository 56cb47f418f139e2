package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the availability queries depend on
func MigrateConstraints(db *gorm.DB) error {
	// Index for calendar lookups by venue and day
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_venue_date_status
		ON reservations (venue_id, date, status);
	`).Error
	if err != nil {
		return err
	}

	// Index for rebuilding the availability index on startup
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_status
		ON reservations (status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
