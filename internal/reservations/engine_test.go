package reservations

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"venuehub/internal/availability"
	"venuehub/internal/catalog"
	"venuehub/internal/drafts"
	"venuehub/pkg/logger"

	"github.com/google/uuid"
)

var testDay = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

type engineFixture struct {
	engine  *Engine
	manager *drafts.Manager
	store   Store
	index   *availability.Index
	repo    *catalog.MemoryRepository
	venue   catalog.Venue
	service catalog.Service
}

func newFixture(t *testing.T, store Store) *engineFixture {
	t.Helper()

	repo := catalog.NewMemoryRepository()
	venue := catalog.Venue{
		ID:         uuid.New(),
		Name:       "Grand Ballroom",
		Capacity:   200,
		HourlyRate: 15000,
		Offered:    true,
	}
	repo.AddVenue(venue)
	service := catalog.Service{
		ID:       uuid.New(),
		Name:     "Stage Lighting",
		Category: catalog.CategoryEquipment,
		Price:    500,
		Offered:  true,
	}
	repo.AddService(service)

	reader := catalog.NewReader(repo)
	manager := drafts.NewManager(reader)
	index := availability.NewIndex()
	if store == nil {
		store = NewMemoryStore()
	}

	return &engineFixture{
		engine:  NewEngine(store, index, manager, reader, logger.GetDefault()),
		manager: manager,
		store:   store,
		index:   index,
		repo:    repo,
		venue:   venue,
		service: service,
	}
}

// reviewedDraft walks a draft through all three steps with valid data
func (f *engineFixture) reviewedDraft(t *testing.T, startTime string, durationHours int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	draft := f.manager.StartDraft()
	id := draft.ID()
	if err := f.manager.SetVenueAndTime(ctx, id, f.venue.ID, testDay, startTime, durationHours, 100); err != nil {
		t.Fatalf("SetVenueAndTime: %v", err)
	}
	if _, err := f.manager.Advance(id); err != nil {
		t.Fatalf("Advance to services: %v", err)
	}
	if err := f.manager.ToggleService(ctx, id, f.service.ID, true); err != nil {
		t.Fatalf("ToggleService: %v", err)
	}
	if _, err := f.manager.Advance(id); err != nil {
		t.Fatalf("Advance to review: %v", err)
	}
	if err := f.manager.SetContactInfo(id, drafts.ContactInfo{
		Name:  "John Smith",
		Email: "john@example.com",
		Phone: "+1234567890",
	}); err != nil {
		t.Fatalf("SetContactInfo: %v", err)
	}
	return id
}

func TestCommitCreatesReservation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	draftID := f.reviewedDraft(t, "14:00", 3)

	reservation, err := f.engine.Commit(ctx, draftID)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if reservation.Status != StatusPending {
		t.Errorf("Status = %v, want %v", reservation.Status, StatusPending)
	}
	if !strings.HasPrefix(reservation.Reference, "RSV-") {
		t.Errorf("Reference = %q, want RSV- prefix", reservation.Reference)
	}
	// 15000/h x 3h hall + one flat 500 service
	if reservation.HallCost != 45000 || reservation.ServicesCost != 500 || reservation.TotalCost != 45500 {
		t.Errorf("costs = %d/%d/%d, want 45000/500/45500",
			reservation.HallCost, reservation.ServicesCost, reservation.TotalCost)
	}
	if len(reservation.Services) != 1 || reservation.Services[0].ServiceID != f.service.ID {
		t.Errorf("service line items = %+v", reservation.Services)
	}

	// Durable and retrievable
	stored, err := f.store.Get(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("store.Get after commit: %v", err)
	}
	if stored.TotalCost != reservation.TotalCost {
		t.Errorf("stored total = %d, want %d", stored.TotalCost, reservation.TotalCost)
	}

	// The slot is occupied and the draft is gone
	if f.index.IsFree(f.venue.ID, reservation.Interval()) {
		t.Error("committed interval still reported free")
	}
	if _, err := f.manager.Get(draftID); !errors.Is(err, drafts.ErrDraftNotFound) {
		t.Errorf("draft still live after commit, Get err = %v", err)
	}
}

func TestCommitRequiresReviewedDraft(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	// Fresh draft, nothing selected
	draft := f.manager.StartDraft()
	if _, err := f.engine.Commit(ctx, draft.ID()); err == nil {
		t.Fatal("Commit of an empty draft succeeded")
	}
	if _, err := f.manager.Get(draft.ID()); err != nil {
		t.Fatalf("draft dropped after rejected commit: %v", err)
	}

	if _, err := f.engine.Commit(ctx, uuid.New()); !errors.Is(err, drafts.ErrDraftNotFound) {
		t.Fatalf("Commit unknown draft err = %v, want ErrDraftNotFound", err)
	}
}

func TestConcurrentCommitsSameSlotSingleWinner(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	const sessions = 20
	draftIDs := make([]uuid.UUID, sessions)
	for i := range draftIDs {
		draftIDs[i] = f.reviewedDraft(t, "14:00", 3)
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make(chan error, sessions)
	for _, id := range draftIDs {
		wg.Add(1)
		go func(draftID uuid.UUID) {
			defer wg.Done()
			<-start
			_, err := f.engine.Commit(ctx, draftID)
			results <- err
		}(id)
	}
	close(start)
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotUnavailable):
			conflicts++
		default:
			t.Errorf("unexpected commit error: %v", err)
		}
	}
	if wins != 1 || conflicts != sessions-1 {
		t.Fatalf("wins = %d, conflicts = %d, want 1 and %d", wins, conflicts, sessions-1)
	}

	// Losing drafts stay live so their sessions can pick another slot
	var live int
	for _, id := range draftIDs {
		if _, err := f.manager.Get(id); err == nil {
			live++
		}
	}
	if live != sessions-1 {
		t.Fatalf("live drafts after race = %d, want %d", live, sessions-1)
	}
}

func TestCommitBackToBackSlotsBothSucceed(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first := f.reviewedDraft(t, "10:00", 2)
	second := f.reviewedDraft(t, "12:00", 2)

	if _, err := f.engine.Commit(ctx, first); err != nil {
		t.Fatalf("Commit first: %v", err)
	}
	if _, err := f.engine.Commit(ctx, second); err != nil {
		t.Fatalf("Commit back-to-back: %v", err)
	}
}

type failingStore struct {
	Store
	insertErr error
}

func (s *failingStore) Insert(ctx context.Context, reservation *Reservation) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	return s.Store.Insert(ctx, reservation)
}

func TestCommitStoreFailureReleasesSlot(t *testing.T) {
	store := &failingStore{Store: NewMemoryStore(), insertErr: errors.New("connection reset")}
	f := newFixture(t, store)
	ctx := context.Background()
	draftID := f.reviewedDraft(t, "14:00", 3)

	_, err := f.engine.Commit(ctx, draftID)
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("Commit err = %v, want PersistenceError", err)
	}

	// The draft survives and the slot is free again, so a retry can succeed
	if _, err := f.manager.Get(draftID); err != nil {
		t.Fatalf("draft dropped after store failure: %v", err)
	}
	store.insertErr = nil
	if _, err := f.engine.Commit(ctx, draftID); err != nil {
		t.Fatalf("retry after store recovery: %v", err)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	reservation, err := f.engine.Commit(ctx, f.reviewedDraft(t, "14:00", 3))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := f.engine.Cancel(ctx, reservation.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	got, err := f.engine.Get(ctx, reservation.ID)
	if err != nil {
		t.Fatalf("Get after cancel: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("Status = %v, want %v", got.Status, StatusCancelled)
	}

	// Cancelling again is NotFound, not idempotent success
	if err := f.engine.Cancel(ctx, reservation.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Cancel err = %v, want ErrNotFound", err)
	}
	if err := f.engine.Cancel(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Cancel unknown id err = %v, want ErrNotFound", err)
	}

	// The exact interval can be booked again
	if _, err := f.engine.Commit(ctx, f.reviewedDraft(t, "14:00", 3)); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	reservation, err := f.engine.Commit(ctx, f.reviewedDraft(t, "14:00", 3))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	confirmed, err := f.engine.UpdateStatus(ctx, reservation.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Errorf("Status = %v, want %v", confirmed.Status, StatusConfirmed)
	}

	// Confirmed cannot go back to pending
	if _, err := f.engine.UpdateStatus(ctx, reservation.ID, StatusPending); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("confirmed->pending err = %v, want ErrInvalidStatus", err)
	}

	// Cancelling through the workflow frees the slot like Cancel does
	if _, err := f.engine.UpdateStatus(ctx, reservation.ID, StatusCancelled); err != nil {
		t.Fatalf("workflow cancel: %v", err)
	}
	if !f.index.IsFree(f.venue.ID, reservation.Interval()) {
		t.Error("slot still held after workflow cancellation")
	}

	// Cancelled is terminal
	if _, err := f.engine.UpdateStatus(ctx, reservation.ID, StatusConfirmed); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("cancelled->confirmed err = %v, want ErrInvalidStatus", err)
	}
}

func TestWarmUpRebuildsIndex(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	active, err := f.engine.Commit(ctx, f.reviewedDraft(t, "14:00", 3))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	cancelled, err := f.engine.Commit(ctx, f.reviewedDraft(t, "09:00", 2))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := f.engine.Cancel(ctx, cancelled.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// Simulate a restart: same store, fresh index and engine
	restarted := NewEngine(f.store, availability.NewIndex(), drafts.NewManager(catalog.NewReader(f.repo)), catalog.NewReader(f.repo), logger.GetDefault())
	if err := restarted.WarmUp(ctx); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}

	slots, err := restarted.DayAvailability(ctx, f.venue.ID, testDay, 1)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	byStart := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byStart[slot.StartTime] = slot.Available
	}
	for start, want := range map[string]bool{
		"09:00": true, // cancelled before restart
		"14:00": false,
		"15:00": false,
		"16:00": false,
		"17:00": true,
	} {
		if byStart[start] != want {
			t.Errorf("slot %s available = %v, want %v", start, byStart[start], want)
		}
	}

	// Holds were rebuilt, so cancellation still frees the interval
	if err := restarted.Cancel(ctx, active.ID); err != nil {
		t.Fatalf("Cancel after warm-up: %v", err)
	}
	slots, err = restarted.DayAvailability(ctx, f.venue.ID, testDay, 3)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	for _, slot := range slots {
		if slot.StartTime == "14:00" && !slot.Available {
			t.Error("slot 14:00 still held after post-warm-up cancel")
		}
	}
}

func TestDayAvailabilityRespectsDuration(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.Commit(ctx, f.reviewedDraft(t, "14:00", 2)); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// A 3-hour booking starting at 12:00 would run into the 14:00-16:00 hold
	slots, err := f.engine.DayAvailability(ctx, f.venue.ID, testDay, 3)
	if err != nil {
		t.Fatalf("DayAvailability: %v", err)
	}
	byStart := make(map[string]bool, len(slots))
	for _, slot := range slots {
		byStart[slot.StartTime] = slot.Available
	}
	if byStart["12:00"] {
		t.Error("12:00 x 3h reported free despite overlap with 14:00 booking")
	}
	if !byStart["11:00"] {
		t.Error("11:00 x 3h reported busy despite ending at 14:00")
	}
	if !byStart["16:00"] {
		t.Error("16:00 x 3h reported busy despite starting at hold end")
	}

	if _, err := f.engine.DayAvailability(ctx, uuid.New(), testDay, 1); !errors.Is(err, catalog.ErrVenueNotFound) {
		t.Fatalf("unknown venue err = %v, want ErrVenueNotFound", err)
	}
}

func TestGetSummaryRecomputesLive(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	draft := f.manager.StartDraft()
	id := draft.ID()

	// Nothing chosen yet: zero costs, no interval
	summary, err := f.engine.GetSummary(id)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Breakdown.Total != 0 || summary.Interval != nil {
		t.Errorf("empty draft summary = %+v", summary)
	}

	if err := f.manager.SetVenueAndTime(ctx, id, f.venue.ID, testDay, "14:00", 3, 100); err != nil {
		t.Fatalf("SetVenueAndTime: %v", err)
	}
	summary, err = f.engine.GetSummary(id)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Breakdown.Total != 45000 {
		t.Errorf("Total = %d, want 45000", summary.Breakdown.Total)
	}

	if _, err := f.manager.Advance(id); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := f.manager.ToggleService(ctx, id, f.service.ID, true); err != nil {
		t.Fatalf("ToggleService: %v", err)
	}
	summary, err = f.engine.GetSummary(id)
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.Breakdown.Total != 45500 {
		t.Errorf("Total after service = %d, want 45500", summary.Breakdown.Total)
	}

	if _, err := f.engine.GetSummary(uuid.New()); !errors.Is(err, drafts.ErrDraftNotFound) {
		t.Fatalf("GetSummary unknown draft err = %v, want ErrDraftNotFound", err)
	}
}
