package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the storage-facing interface for catalog reference data
type Repository interface {
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context) ([]Venue, error)
	GetService(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context) ([]Service, error)
}

// repository implements Repository on PostgreSQL
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) ListVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	// Catalog insertion order; no further ordering guarantees
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *repository) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	var service Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *repository) ListServices(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
