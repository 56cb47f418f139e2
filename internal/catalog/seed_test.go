package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSeededRepositoryThroughReader(t *testing.T) {
	reader := NewReader(NewSeededMemoryRepository())
	ctx := context.Background()

	venues, err := reader.ListVenues(ctx)
	if err != nil {
		t.Fatalf("ListVenues: %v", err)
	}
	if len(venues) != 5 {
		t.Fatalf("expected 5 seeded venues, got %d", len(venues))
	}

	services, err := reader.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 10 {
		t.Fatalf("expected 10 seeded services, got %d", len(services))
	}

	venue, err := reader.GetVenue(ctx, venues[0].ID)
	if err != nil {
		t.Fatalf("GetVenue: %v", err)
	}
	if venue.Name != venues[0].Name {
		t.Fatalf("GetVenue returned %q, want %q", venue.Name, venues[0].Name)
	}

	if _, err := reader.GetVenue(ctx, uuid.New()); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	if _, err := reader.GetService(ctx, uuid.New()); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestSeededServicesBillingModes(t *testing.T) {
	repo := NewSeededMemoryRepository()
	services, err := repo.ListServices(context.Background())
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}

	var perAttendee, flat int
	for _, svc := range services {
		want := BillingFlat
		if svc.Category == CategoryCatering {
			want = BillingPerAttendee
		}
		if got := svc.BillingMode(); got != want {
			t.Errorf("%s (%s): billing mode %s, want %s", svc.Name, svc.Category, got, want)
		}
		if svc.BillingMode() == BillingPerAttendee {
			perAttendee++
		} else {
			flat++
		}
	}

	// The stock catalog carries both billing modes
	if perAttendee == 0 || flat == 0 {
		t.Fatalf("expected both billing modes in the seed data, got %d per-attendee and %d flat", perAttendee, flat)
	}
}
