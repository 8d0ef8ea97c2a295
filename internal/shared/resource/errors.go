package resource

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput wraps entity invariant violations.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a write would duplicate the unique key of
	// another record.
	ErrConflict = errors.New("resource conflict")
)
