package database

import (
	"venuehub/internal/catalog"
	"venuehub/internal/reservations"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&catalog.Venue{},
		&catalog.Service{},
		&reservations.Reservation{},
		&reservations.ReservationService{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
