package catalog

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrServiceNotFound = errors.New("service not found")
)
