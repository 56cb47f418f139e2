package drafts

import (
	"context"
	"sync"
	"time"

	"venuehub/internal/catalog"

	"github.com/google/uuid"
)

// Manager owns the registry of live drafts and resolves catalog references on
// their behalf. Drafts themselves are single-session objects; the manager's
// lock guards only the map.
type Manager struct {
	mu      sync.RWMutex
	drafts  map[uuid.UUID]*Draft
	catalog catalog.Reader
}

// NewManager creates a draft manager backed by the given catalog
func NewManager(catalogReader catalog.Reader) *Manager {
	return &Manager{
		drafts:  make(map[uuid.UUID]*Draft),
		catalog: catalogReader,
	}
}

// StartDraft creates a fresh draft on step 1 and registers it
func (m *Manager) StartDraft() *Draft {
	draft := New()
	m.mu.Lock()
	m.drafts[draft.ID()] = draft
	m.mu.Unlock()
	return draft
}

// Get returns the live draft for the id
func (m *Manager) Get(draftID uuid.UUID) (*Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	draft, ok := m.drafts[draftID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// SetVenueAndTime resolves the venue and records the step-1 selections
func (m *Manager) SetVenueAndTime(ctx context.Context, draftID, venueID uuid.UUID, date time.Time, startTime string, durationHours, attendees int) error {
	draft, err := m.Get(draftID)
	if err != nil {
		return err
	}

	venue, err := m.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return err
	}

	return draft.SetVenueAndTime(venue, date, startTime, durationHours, attendees)
}

// ToggleService selects or deselects an add-on; both directions are idempotent
func (m *Manager) ToggleService(ctx context.Context, draftID, serviceID uuid.UUID, selected bool) error {
	draft, err := m.Get(draftID)
	if err != nil {
		return err
	}

	if !selected {
		return draft.RemoveService(serviceID)
	}

	service, err := m.catalog.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	return draft.AddService(*service)
}

// SetContactInfo records the review-step contact fields
func (m *Manager) SetContactInfo(draftID uuid.UUID, info ContactInfo) error {
	draft, err := m.Get(draftID)
	if err != nil {
		return err
	}
	return draft.SetContactInfo(info)
}

// Advance moves the draft to the next step
func (m *Manager) Advance(draftID uuid.UUID) (State, error) {
	draft, err := m.Get(draftID)
	if err != nil {
		return "", err
	}
	if err := draft.Next(); err != nil {
		return draft.State(), err
	}
	return draft.State(), nil
}

// Back moves the draft to the previous step, preserving entered data
func (m *Manager) Back(draftID uuid.UUID) (State, error) {
	draft, err := m.Get(draftID)
	if err != nil {
		return "", err
	}
	if err := draft.Back(); err != nil {
		return draft.State(), err
	}
	return draft.State(), nil
}

// Abandon discards a draft without effect and drops it from the registry
func (m *Manager) Abandon(draftID uuid.UUID) error {
	draft, err := m.Get(draftID)
	if err != nil {
		return err
	}
	if err := draft.Abandon(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.drafts, draftID)
	m.mu.Unlock()
	return nil
}

// Discard drops a committed draft from the registry. The engine calls this
// after a successful commit; the draft must not be reused.
func (m *Manager) Discard(draftID uuid.UUID) {
	m.mu.Lock()
	delete(m.drafts, draftID)
	m.mu.Unlock()
}
