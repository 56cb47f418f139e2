package reservations

import (
	"context"
	"errors"
	"time"

	"venuehub/internal/availability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Postgres-backed reservation store
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(ctx context.Context, reservation *Reservation) error {
	// Create persists the service line items through the association
	return s.db.WithContext(ctx).Create(reservation).Error
}

func (s *gormStore) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := s.db.WithContext(ctx).Preload("Services").First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (s *gormStore) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := s.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) ListByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]Reservation, error) {
	var reservations []Reservation
	err := s.db.WithContext(ctx).
		Preload("Services").
		Where("venue_id = ? AND date = ?", venueID, availability.NormalizeDate(date)).
		Order("start_hour asc").
		Find(&reservations).Error
	return reservations, err
}

func (s *gormStore) ListActive(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	err := s.db.WithContext(ctx).
		Where("status IN ?", []Status{StatusPending, StatusConfirmed}).
		Order("created_at asc").
		Find(&reservations).Error
	return reservations, err
}
