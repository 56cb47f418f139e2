package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the durable home of committed reservations. Implementations must
// treat Insert as all-or-nothing: either the reservation and its service line
// items land together or nothing does.
type Store interface {
	Insert(ctx context.Context, reservation *Reservation) error
	Get(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]Reservation, error)

	// ListActive returns every reservation still occupying its interval,
	// across all venues. Used to rebuild the availability index on startup.
	ListActive(ctx context.Context) ([]Reservation, error)
}
