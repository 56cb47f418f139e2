package availability

import "errors"

// ErrConflict is returned by Reserve when the interval overlaps an already
// registered hold for the same venue. Detect-and-abort: the caller picks a
// different slot, nothing is merged or queued.
var ErrConflict = errors.New("interval conflicts with an existing reservation")
