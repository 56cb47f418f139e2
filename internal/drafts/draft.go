package drafts

import (
	"fmt"
	"time"

	"venuehub/internal/availability"
	"venuehub/internal/catalog"

	"github.com/google/uuid"
)

// State identifies the step a draft is on
type State string

const (
	StateSelectingVenueAndTime  State = "SELECTING_VENUE_AND_TIME"
	StateSelectingServices      State = "SELECTING_SERVICES"
	StateReviewingAndConfirming State = "REVIEWING_AND_CONFIRMING"
	StateCommitted              State = "COMMITTED"
	StateAbandoned              State = "ABANDONED"
)

// IsTerminal reports whether the draft can no longer be mutated
func (s State) IsTerminal() bool {
	return s == StateCommitted || s == StateAbandoned
}

// ContactInfo carries the customer details collected on the review step
type ContactInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// Draft is an in-progress booking owned by a single session. It accumulates
// choices across the three form steps and validates each forward transition.
// Single-owner by contract: a draft is never shared between sessions, so it
// carries no locking of its own (the Manager guards only its registry).
type Draft struct {
	id        uuid.UUID
	state     State
	venue     *catalog.Venue
	interval  *availability.Interval
	attendees int
	services  []catalog.Service
	contact   ContactInfo
	createdAt time.Time
}

// New creates an empty draft on the first step
func New() *Draft {
	return &Draft{
		id:        uuid.New(),
		state:     StateSelectingVenueAndTime,
		createdAt: time.Now().UTC(),
	}
}

func (d *Draft) ID() uuid.UUID                    { return d.id }
func (d *Draft) State() State                     { return d.state }
func (d *Draft) Venue() *catalog.Venue            { return d.venue }
func (d *Draft) Interval() *availability.Interval { return d.interval }
func (d *Draft) Attendees() int                   { return d.attendees }
func (d *Draft) Contact() ContactInfo             { return d.contact }
func (d *Draft) CreatedAt() time.Time             { return d.createdAt }

// Services returns the selected add-ons in selection order
func (d *Draft) Services() []catalog.Service {
	out := make([]catalog.Service, len(d.services))
	copy(out, d.services)
	return out
}

// HasService reports whether the service is currently selected
func (d *Draft) HasService(serviceID uuid.UUID) bool {
	for _, s := range d.services {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// SetVenueAndTime records the step-1 choices. Only legal on the first step;
// use Back to revise an earlier selection. Validation failures name the
// offending field and leave the draft untouched.
func (d *Draft) SetVenueAndTime(venue *catalog.Venue, date time.Time, startTime string, durationHours, attendees int) error {
	if d.state != StateSelectingVenueAndTime {
		return transitionErr("set venue and time", d.state)
	}

	if venue == nil {
		return validationErr("venue", "a venue must be selected")
	}
	if !venue.Offered {
		return validationErr("venue", "venue is not currently offered")
	}
	if date.IsZero() {
		return validationErr("date", "a date must be selected")
	}
	if durationHours < 1 {
		return validationErr("duration", "minimum duration is 1 hour")
	}
	interval, err := availability.NewInterval(date, startTime, durationHours)
	if err != nil {
		return validationErr("startTime", fmt.Sprintf("start time must be an on-the-hour slot between %02d:00 and %02d:00", availability.FirstSlotHour, availability.LastSlotHour))
	}
	if attendees < 1 {
		return validationErr("attendees", "at least one attendee is required")
	}
	if attendees > venue.Capacity {
		return validationErr("attendees", fmt.Sprintf("exceeds venue capacity of %d", venue.Capacity))
	}

	d.venue = venue
	d.interval = &interval
	d.attendees = attendees
	return nil
}

// AddService selects an add-on. Adding an already selected service is a no-op.
func (d *Draft) AddService(service catalog.Service) error {
	if d.state != StateSelectingServices {
		return transitionErr("select services", d.state)
	}
	if !service.Offered {
		return validationErr("service", "service is not currently offered")
	}
	if d.HasService(service.ID) {
		return nil
	}
	d.services = append(d.services, service)
	return nil
}

// RemoveService deselects an add-on. Removing one that is not selected is a no-op.
func (d *Draft) RemoveService(serviceID uuid.UUID) error {
	if d.state != StateSelectingServices {
		return transitionErr("select services", d.state)
	}
	for i, s := range d.services {
		if s.ID == serviceID {
			d.services = append(d.services[:i], d.services[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetContactInfo records the review-step contact fields, validating them
// immediately so the form can surface field-level feedback.
func (d *Draft) SetContactInfo(info ContactInfo) error {
	if d.state != StateReviewingAndConfirming {
		return transitionErr("set contact info", d.state)
	}
	if err := validateContact(info); err != nil {
		return err
	}
	d.contact = info
	return nil
}

// Next advances the draft one step, enforcing the current step's contract.
// A failed validation leaves state and data unchanged.
func (d *Draft) Next() error {
	switch d.state {
	case StateSelectingVenueAndTime:
		if err := d.validateVenueAndTime(); err != nil {
			return err
		}
		d.state = StateSelectingServices
		return nil
	case StateSelectingServices:
		// Service selection is optional; nothing blocks this transition
		d.state = StateReviewingAndConfirming
		return nil
	default:
		return transitionErr("advance", d.state)
	}
}

// Back returns to the previous step, preserving everything already entered
func (d *Draft) Back() error {
	switch d.state {
	case StateSelectingServices:
		d.state = StateSelectingVenueAndTime
		return nil
	case StateReviewingAndConfirming:
		d.state = StateSelectingServices
		return nil
	default:
		return transitionErr("go back", d.state)
	}
}

// validateVenueAndTime re-checks the step-1 contract against current data
func (d *Draft) validateVenueAndTime() error {
	if d.venue == nil {
		return validationErr("venue", "a venue must be selected")
	}
	if d.interval == nil {
		return validationErr("startTime", "a start time must be selected")
	}
	if d.attendees < 1 {
		return validationErr("attendees", "at least one attendee is required")
	}
	if d.attendees > d.venue.Capacity {
		return validationErr("attendees", fmt.Sprintf("exceeds venue capacity of %d", d.venue.Capacity))
	}
	return nil
}

// ValidateForCommit runs every step's validation. The engine calls this even
// though the state machine already gates transitions: a caller must not be
// able to reach commit with a draft that skipped a step.
func (d *Draft) ValidateForCommit() error {
	if d.state != StateReviewingAndConfirming {
		return transitionErr("commit", d.state)
	}
	if err := d.validateVenueAndTime(); err != nil {
		return err
	}
	return validateContact(d.contact)
}

// MarkCommitted moves the draft to its committed terminal state. The engine
// calls this once the reservation is persisted; the draft must not be reused.
func (d *Draft) MarkCommitted() error {
	if d.state != StateReviewingAndConfirming {
		return transitionErr("commit", d.state)
	}
	d.state = StateCommitted
	return nil
}

// Abandon discards the draft without effect. Legal from any non-terminal state.
func (d *Draft) Abandon() error {
	if d.state.IsTerminal() {
		return transitionErr("abandon", d.state)
	}
	d.state = StateAbandoned
	return nil
}
