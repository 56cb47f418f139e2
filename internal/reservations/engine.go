package reservations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"venuehub/internal/availability"
	"venuehub/internal/catalog"
	"venuehub/internal/drafts"
	"venuehub/internal/pricing"
	"venuehub/pkg/logger"

	"github.com/google/uuid"
)

// Engine coordinates the commit and cancellation of bookings. It is the only
// component that touches the availability index and the store together, so
// their consistency rules live here:
//
//   - a slot is held in the index before the store write, and released if the
//     write fails
//   - cancelling releases the hold only after the status change is durable
type Engine struct {
	store   Store
	index   *availability.Index
	drafts  *drafts.Manager
	catalog catalog.Reader
	logger  *logger.Logger

	// holds maps active reservations to their index handles so Cancel can
	// release the exact hold Commit took.
	mu    sync.Mutex
	holds map[uuid.UUID]availability.Handle
}

// NewEngine creates a reservation engine
func NewEngine(store Store, index *availability.Index, draftManager *drafts.Manager, catalogReader catalog.Reader, log *logger.Logger) *Engine {
	return &Engine{
		store:   store,
		index:   index,
		drafts:  draftManager,
		catalog: catalogReader,
		logger:  log,
		holds:   make(map[uuid.UUID]availability.Handle),
	}
}

// WarmUp rebuilds the availability index from active reservations. Called once
// on startup before the engine accepts traffic.
func (e *Engine) WarmUp(ctx context.Context) error {
	active, err := e.store.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active reservations: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, reservation := range active {
		handle, err := e.index.Reserve(reservation.VenueID, reservation.Interval())
		if err != nil {
			// Overlapping active rows mean the store was corrupted outside
			// this process; refuse to start on bad data.
			return fmt.Errorf("rebuild index for reservation %s: %w", reservation.ID, err)
		}
		e.holds[reservation.ID] = handle
	}

	e.logger.InfoContext(ctx, "Availability Index Rebuilt", "active_reservations", len(active))
	return nil
}

// Commit turns a fully reviewed draft into a durable reservation. The draft
// must be on the review step with valid data; the requested slot is claimed
// atomically, so under concurrent commits for the same venue and overlapping
// interval exactly one caller succeeds and the rest get ErrSlotUnavailable.
// On any failure the draft stays live so the user can adjust and retry.
func (e *Engine) Commit(ctx context.Context, draftID uuid.UUID) (*Reservation, error) {
	draft, err := e.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.ValidateForCommit(); err != nil {
		var ve *drafts.ValidationError
		if errors.As(err, &ve) {
			e.logger.LogDraftRejected(ctx, draftID.String(), ve.Field, ve.Reason)
		}
		return nil, err
	}

	venue := draft.Venue()
	interval := *draft.Interval()

	handle, err := e.index.Reserve(venue.ID, interval)
	if err != nil {
		if errors.Is(err, availability.ErrConflict) {
			e.logger.LogSlotConflict(ctx, venue.ID.String(), interval.String())
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	reservation, err := e.buildReservation(draft)
	if err != nil {
		e.index.Release(handle)
		return nil, err
	}

	if err := e.store.Insert(ctx, reservation); err != nil {
		e.index.Release(handle)
		e.logger.LogStoreFailure(ctx, "insert", err)
		return nil, &PersistenceError{Op: "insert", Err: err}
	}

	e.mu.Lock()
	e.holds[reservation.ID] = handle
	e.mu.Unlock()

	// The draft is spent; errors here cannot occur after ValidateForCommit
	if err := draft.MarkCommitted(); err != nil {
		return nil, err
	}
	e.drafts.Discard(draftID)

	e.logger.LogReservationCreated(ctx, reservation.ID.String(), venue.ID.String(), reservation.TotalCost)
	return reservation, nil
}

// buildReservation snapshots the draft into a durable record priced at commit time
func (e *Engine) buildReservation(draft *drafts.Draft) (*Reservation, error) {
	venue := draft.Venue()
	interval := draft.Interval()
	contact := draft.Contact()
	services := draft.Services()

	breakdown := pricing.Quote(venue, interval.DurationHours, draft.Attendees(), services)

	reference, err := generateReference()
	if err != nil {
		return nil, fmt.Errorf("generate reference: %w", err)
	}

	reservation := &Reservation{
		ID:              uuid.New(),
		Reference:       reference,
		VenueID:         venue.ID,
		VenueName:       venue.Name,
		Date:            interval.Date,
		StartHour:       interval.StartHour,
		DurationHours:   interval.DurationHours,
		Attendees:       draft.Attendees(),
		ContactName:     contact.Name,
		ContactEmail:    contact.Email,
		ContactPhone:    contact.Phone,
		SpecialRequests: contact.SpecialRequests,
		HallCost:        breakdown.HallCost,
		ServicesCost:    breakdown.ServicesCost,
		TotalCost:       breakdown.Total,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	for _, service := range services {
		reservation.Services = append(reservation.Services, ReservationService{
			ID:            uuid.New(),
			ReservationID: reservation.ID,
			ServiceID:     service.ID,
			Name:          service.Name,
			Category:      service.Category,
			UnitPrice:     service.Price,
			Cost:          pricing.ServiceCost(service, draft.Attendees()),
		})
	}

	return reservation, nil
}

// Cancel releases a reservation's interval and marks it cancelled. Cancelling
// an unknown or already cancelled reservation returns ErrNotFound.
func (e *Engine) Cancel(ctx context.Context, id uuid.UUID) error {
	reservation, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !reservation.Status.IsActive() {
		return ErrNotFound
	}

	if err := e.store.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		e.logger.LogStoreFailure(ctx, "update_status", err)
		return &PersistenceError{Op: "update_status", Err: err}
	}
	e.releaseHold(id)

	e.logger.LogReservationCancelled(ctx, id.String(), reservation.VenueID.String())
	return nil
}

// UpdateStatus applies an approval-workflow transition (pending to confirmed,
// active to cancelled). Cancellations go through the same release path as
// Cancel so the slot opens up either way.
func (e *Engine) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Reservation, error) {
	reservation, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatus, reservation.Status, status)
	}

	if err := e.store.UpdateStatus(ctx, id, status); err != nil {
		e.logger.LogStoreFailure(ctx, "update_status", err)
		return nil, &PersistenceError{Op: "update_status", Err: err}
	}
	if status == StatusCancelled {
		e.releaseHold(id)
		e.logger.LogReservationCancelled(ctx, id.String(), reservation.VenueID.String())
	}

	reservation.Status = status
	return reservation, nil
}

// releaseHold frees the index hold for a reservation, if this process has one
func (e *Engine) releaseHold(id uuid.UUID) {
	e.mu.Lock()
	handle, ok := e.holds[id]
	if ok {
		delete(e.holds, id)
	}
	e.mu.Unlock()
	if ok {
		e.index.Release(handle)
	}
}

// Get returns a single reservation by id
func (e *Engine) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return e.store.Get(ctx, id)
}

// ListByVenueAndDate returns a venue's reservations for a calendar day
func (e *Engine) ListByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]Reservation, error) {
	if _, err := e.catalog.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	return e.store.ListByVenueAndDate(ctx, venueID, date)
}

// SlotAvailability reports whether a booking of the given duration could
// start at a slot.
type SlotAvailability struct {
	StartTime string `json:"start_time"`
	Available bool   `json:"available"`
}

// DayAvailability checks every bookable start slot on a venue's day for the
// given duration. Advisory only: the answer can go stale the moment it is
// returned, Commit remains the sole arbiter.
func (e *Engine) DayAvailability(ctx context.Context, venueID uuid.UUID, date time.Time, durationHours int) ([]SlotAvailability, error) {
	if _, err := e.catalog.GetVenue(ctx, venueID); err != nil {
		return nil, err
	}
	if durationHours < 1 {
		return nil, fmt.Errorf("duration must be at least 1 hour, got %d", durationHours)
	}

	day := availability.NormalizeDate(date)
	slots := make([]SlotAvailability, 0, availability.LastSlotHour-availability.FirstSlotHour+1)
	for hour := availability.FirstSlotHour; hour <= availability.LastSlotHour; hour++ {
		interval := availability.Interval{Date: day, StartHour: hour, DurationHours: durationHours}
		slots = append(slots, SlotAvailability{
			StartTime: interval.StartTime(),
			Available: e.index.IsFree(venueID, interval),
		})
	}
	return slots, nil
}

// Summary is the live cost and selection overview shown on the review step
type Summary struct {
	DraftID   uuid.UUID              `json:"draft_id"`
	State     drafts.State           `json:"state"`
	VenueName string                 `json:"venue_name,omitempty"`
	Interval  *availability.Interval `json:"interval,omitempty"`
	StartTime string                 `json:"start_time,omitempty"`
	EndTime   string                 `json:"end_time,omitempty"`
	Attendees int                    `json:"attendees,omitempty"`
	Services  []catalog.Service      `json:"services"`
	Breakdown pricing.Breakdown      `json:"cost_breakdown"`
}

// GetSummary prices the draft as it currently stands. Costs are recomputed on
// every call, never cached on the draft. Before a venue and time are chosen
// the summary carries zero costs.
func (e *Engine) GetSummary(draftID uuid.UUID) (*Summary, error) {
	draft, err := e.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		DraftID:  draft.ID(),
		State:    draft.State(),
		Services: draft.Services(),
	}

	venue := draft.Venue()
	interval := draft.Interval()
	if venue == nil || interval == nil {
		return summary, nil
	}

	summary.VenueName = venue.Name
	summary.Interval = interval
	summary.StartTime = interval.StartTime()
	summary.EndTime = interval.EndTime()
	summary.Attendees = draft.Attendees()
	summary.Breakdown = pricing.Quote(venue, interval.DurationHours, draft.Attendees(), summary.Services)
	return summary, nil
}
