package reservations

import (
	"context"
	"sort"
	"sync"
	"time"

	"venuehub/internal/availability"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for development mode and tests.
// Copies in, copies out: callers never share memory with the store.
type MemoryStore struct {
	mu           sync.RWMutex
	reservations map[uuid.UUID]Reservation
}

// NewMemoryStore creates an empty in-memory reservation store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reservations: make(map[uuid.UUID]Reservation)}
}

func (s *MemoryStore) Insert(ctx context.Context, reservation *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[reservation.ID] = cloneReservation(*reservation)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservation, ok := s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneReservation(reservation)
	return &out, nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reservation, ok := s.reservations[id]
	if !ok {
		return ErrNotFound
	}
	reservation.Status = status
	reservation.UpdatedAt = time.Now().UTC()
	s.reservations[id] = reservation
	return nil
}

func (s *MemoryStore) ListByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]Reservation, error) {
	day := availability.NormalizeDate(date)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Reservation
	for _, reservation := range s.reservations {
		if reservation.VenueID == venueID && reservation.Date.Equal(day) {
			out = append(out, cloneReservation(reservation))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartHour < out[j].StartHour })
	return out, nil
}

func (s *MemoryStore) ListActive(ctx context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Reservation
	for _, reservation := range s.reservations {
		if reservation.Status.IsActive() {
			out = append(out, cloneReservation(reservation))
		}
	}
	return out, nil
}

func cloneReservation(r Reservation) Reservation {
	services := make([]ReservationService, len(r.Services))
	copy(services, r.Services)
	r.Services = services
	return r
}
