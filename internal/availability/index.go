package availability

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle identifies a registered interval so it can be released later.
// The zero Handle is inert: releasing it is a no-op.
type Handle struct {
	venueID  uuid.UUID
	interval Interval
	id       uint64
}

// Interval returns the window this handle holds
func (h Handle) Interval() Interval {
	return h.interval
}

// VenueID returns the venue this handle holds a window on
func (h Handle) VenueID() uuid.UUID {
	return h.venueID
}

type hold struct {
	id       uint64
	interval Interval
}

// venueCalendar keeps one venue's active intervals sorted by start time.
// Intervals in the slice are pairwise non-overlapping, so both starts and
// ends are monotonically increasing and overlap queries reduce to a binary
// search plus a neighbor check.
type venueCalendar struct {
	mu    sync.Mutex
	holds []hold
}

// insertionPoint returns the index of the first hold starting at or after t
func (vc *venueCalendar) insertionPoint(iv Interval) int {
	return sort.Search(len(vc.holds), func(i int) bool {
		return !vc.holds[i].interval.StartAt().Before(iv.StartAt())
	})
}

// conflicts reports whether iv overlaps any registered hold. Caller must hold vc.mu.
func (vc *venueCalendar) conflicts(iv Interval) bool {
	i := vc.insertionPoint(iv)
	// Predecessor may run into iv
	if i > 0 && vc.holds[i-1].interval.EndAt().After(iv.StartAt()) {
		return true
	}
	// Successor may start before iv ends
	if i < len(vc.holds) && vc.holds[i].interval.StartAt().Before(iv.EndAt()) {
		return true
	}
	return false
}

// Index answers and updates per-venue interval availability. Check-and-insert
// is atomic under a per-venue mutex, so two racing Reserve calls for
// overlapping windows on the same venue see exactly one success. Different
// venues never contend.
type Index struct {
	mu     sync.RWMutex
	venues map[uuid.UUID]*venueCalendar
	nextID atomic.Uint64
}

// NewIndex creates an empty availability index
func NewIndex() *Index {
	return &Index{venues: make(map[uuid.UUID]*venueCalendar)}
}

func (x *Index) calendar(venueID uuid.UUID) *venueCalendar {
	x.mu.RLock()
	vc, ok := x.venues[venueID]
	x.mu.RUnlock()
	if ok {
		return vc
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if vc, ok = x.venues[venueID]; ok {
		return vc
	}
	vc = &venueCalendar{}
	x.venues[venueID] = vc
	return vc
}

// IsFree reports whether no active interval for the venue overlaps iv.
// Advisory only: a positive answer can be stale by the time the caller acts
// on it, so commits go through Reserve.
func (x *Index) IsFree(venueID uuid.UUID, iv Interval) bool {
	vc := x.calendar(venueID)
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return !vc.conflicts(iv)
}

// Reserve atomically re-checks availability and registers the interval.
// Returns ErrConflict if any overlapping interval is already registered.
func (x *Index) Reserve(venueID uuid.UUID, iv Interval) (Handle, error) {
	vc := x.calendar(venueID)
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.conflicts(iv) {
		return Handle{}, ErrConflict
	}

	h := hold{id: x.nextID.Add(1), interval: iv}
	i := vc.insertionPoint(iv)
	vc.holds = append(vc.holds, hold{})
	copy(vc.holds[i+1:], vc.holds[i:])
	vc.holds[i] = h

	return Handle{venueID: venueID, interval: iv, id: h.id}, nil
}

// Release removes the interval registered under the handle. Idempotent:
// releasing an already released or zero handle is a no-op.
func (x *Index) Release(h Handle) {
	if h.id == 0 {
		return
	}

	x.mu.RLock()
	vc, ok := x.venues[h.venueID]
	x.mu.RUnlock()
	if !ok {
		return
	}

	vc.mu.Lock()
	defer vc.mu.Unlock()
	// Registered intervals are non-overlapping, so at most one hold occupies
	// the handle's start time.
	i := vc.insertionPoint(h.interval)
	if i < len(vc.holds) && vc.holds[i].id == h.id {
		vc.holds = append(vc.holds[:i], vc.holds[i+1:]...)
	}
}
