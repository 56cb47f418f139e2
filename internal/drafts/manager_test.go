package drafts

import (
	"context"
	"errors"
	"testing"

	"venuehub/internal/catalog"

	"github.com/google/uuid"
)

func testManager(t *testing.T) (*Manager, *catalog.MemoryRepository) {
	t.Helper()
	repo := catalog.NewMemoryRepository()
	return NewManager(catalog.NewReader(repo)), repo
}

func TestManagerStartAndGet(t *testing.T) {
	m, _ := testManager(t)

	draft := m.StartDraft()
	got, err := m.Get(draft.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID() != draft.ID() {
		t.Fatal("Get returned a different draft")
	}

	if _, err := m.Get(uuid.New()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("Get unknown id error = %v, want ErrDraftNotFound", err)
	}
}

func TestManagerSetVenueAndTimeResolvesCatalog(t *testing.T) {
	m, repo := testManager(t)
	venue := *testVenue(150)
	repo.AddVenue(venue)

	draft := m.StartDraft()
	ctx := context.Background()

	if err := m.SetVenueAndTime(ctx, draft.ID(), venue.ID, testDay, "10:00", 2, 75); err != nil {
		t.Fatalf("SetVenueAndTime: %v", err)
	}
	if draft.Venue() == nil || draft.Venue().ID != venue.ID {
		t.Fatal("venue not recorded on draft")
	}

	// Unknown venue surfaces the catalog's NotFound as-is
	fresh := m.StartDraft()
	err := m.SetVenueAndTime(ctx, fresh.ID(), uuid.New(), testDay, "10:00", 2, 75)
	if !errors.Is(err, catalog.ErrVenueNotFound) {
		t.Fatalf("SetVenueAndTime unknown venue error = %v, want ErrVenueNotFound", err)
	}
}

func TestManagerToggleService(t *testing.T) {
	m, repo := testManager(t)
	venue := *testVenue(150)
	repo.AddVenue(venue)
	svc := testService(catalog.CategoryDecoration)
	repo.AddService(svc)

	ctx := context.Background()
	draft := m.StartDraft()
	if err := m.SetVenueAndTime(ctx, draft.ID(), venue.ID, testDay, "10:00", 2, 75); err != nil {
		t.Fatalf("SetVenueAndTime: %v", err)
	}
	if _, err := m.Advance(draft.ID()); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if err := m.ToggleService(ctx, draft.ID(), svc.ID, true); err != nil {
		t.Fatalf("ToggleService on: %v", err)
	}
	if !draft.HasService(svc.ID) {
		t.Fatal("service not selected")
	}

	if err := m.ToggleService(ctx, draft.ID(), svc.ID, false); err != nil {
		t.Fatalf("ToggleService off: %v", err)
	}
	if draft.HasService(svc.ID) {
		t.Fatal("service still selected")
	}

	// Deselecting an unknown service id is a harmless no-op; selecting one is NotFound
	if err := m.ToggleService(ctx, draft.ID(), uuid.New(), false); err != nil {
		t.Fatalf("ToggleService off unknown: %v", err)
	}
	if err := m.ToggleService(ctx, draft.ID(), uuid.New(), true); !errors.Is(err, catalog.ErrServiceNotFound) {
		t.Fatalf("ToggleService on unknown error = %v, want ErrServiceNotFound", err)
	}
}

func TestManagerAbandonDropsDraft(t *testing.T) {
	m, _ := testManager(t)
	draft := m.StartDraft()

	if err := m.Abandon(draft.ID()); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if _, err := m.Get(draft.ID()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("Get after Abandon error = %v, want ErrDraftNotFound", err)
	}
	if err := m.Abandon(draft.ID()); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("second Abandon error = %v, want ErrDraftNotFound", err)
	}
}
