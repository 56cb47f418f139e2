package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository, used in tests and storeless runs.
// The catalog is immutable after construction so reads need no locking beyond
// the guard around the maps themselves.
type MemoryRepository struct {
	mu       sync.RWMutex
	venues   []Venue
	services []Service
	venueIdx map[uuid.UUID]int
	svcIdx   map[uuid.UUID]int
}

// NewMemoryRepository creates an empty in-memory catalog
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		venueIdx: make(map[uuid.UUID]int),
		svcIdx:   make(map[uuid.UUID]int),
	}
}

// AddVenue registers a venue; insertion order is list order
func (m *MemoryRepository) AddVenue(v Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.venueIdx[v.ID] = len(m.venues)
	m.venues = append(m.venues, v)
}

// AddService registers a service; insertion order is list order
func (m *MemoryRepository) AddService(s Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.svcIdx[s.ID] = len(m.services)
	m.services = append(m.services, s)
}

func (m *MemoryRepository) GetVenue(_ context.Context, id uuid.UUID) (*Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.venueIdx[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	venue := m.venues[i]
	return &venue, nil
}

func (m *MemoryRepository) ListVenues(_ context.Context) ([]Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Venue, len(m.venues))
	copy(out, m.venues)
	return out, nil
}

func (m *MemoryRepository) GetService(_ context.Context, id uuid.UUID) (*Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.svcIdx[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	service := m.services[i]
	return &service, nil
}

func (m *MemoryRepository) ListServices(_ context.Context) ([]Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Service, len(m.services))
	copy(out, m.services)
	return out, nil
}
