package domain

import "errors"

var (
	// ErrInvalidTransition is returned when a status change is not allowed
	// from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidRecord wraps validation failures.
	ErrInvalidRecord = errors.New("invalid record")
)
