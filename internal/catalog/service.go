package catalog

import (
	"context"
	"time"

	"venuehub/pkg/cache"

	"github.com/google/uuid"
)

// Reader is the read-only catalog interface consumed by drafts and the HTTP
// layer. Lookups of unknown ids return ErrVenueNotFound / ErrServiceNotFound.
type Reader interface {
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context) ([]Venue, error)
	GetService(ctx context.Context, id uuid.UUID) (*Service, error)
	ListServices(ctx context.Context) ([]Service, error)
}

// reader implements Reader over a Repository with optional redis caching
type reader struct {
	repo         Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

// NewReader creates a catalog reader without caching
func NewReader(repo Repository) Reader {
	return &reader{repo: repo}
}

// NewCachedReader creates a catalog reader with a redis cache in front of the
// repository. Catalog data is immutable at run time, so entries only expire.
func NewCachedReader(repo Repository, cacheService cache.Service, ttl time.Duration) Reader {
	return &reader{repo: repo, cacheService: cacheService, cacheTTL: ttl}
}

func (r *reader) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	if r.cacheService == nil {
		return r.repo.GetVenue(ctx, id)
	}

	var venue Venue
	err := r.cacheService.GetOrSet(ctx, cache.VenueKey(id.String()), r.cacheTTL, func() (interface{}, error) {
		return r.repo.GetVenue(ctx, id)
	}, &venue)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *reader) ListVenues(ctx context.Context) ([]Venue, error) {
	if r.cacheService == nil {
		return r.repo.ListVenues(ctx)
	}

	var venues []Venue
	err := r.cacheService.GetOrSet(ctx, cache.VenueListKey(), r.cacheTTL, func() (interface{}, error) {
		return r.repo.ListVenues(ctx)
	}, &venues)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *reader) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	if r.cacheService == nil {
		return r.repo.GetService(ctx, id)
	}

	var service Service
	err := r.cacheService.GetOrSet(ctx, cache.ServiceKey(id.String()), r.cacheTTL, func() (interface{}, error) {
		return r.repo.GetService(ctx, id)
	}, &service)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *reader) ListServices(ctx context.Context) ([]Service, error) {
	if r.cacheService == nil {
		return r.repo.ListServices(ctx)
	}

	var services []Service
	err := r.cacheService.GetOrSet(ctx, cache.ServiceListKey(), r.cacheTTL, func() (interface{}, error) {
		return r.repo.ListServices(ctx)
	}, &services)
	if err != nil {
		return nil, err
	}
	return services, nil
}
