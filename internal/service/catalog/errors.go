package catalog

import "errors"

var (
	ErrNotFound        = errors.New("service not found")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
