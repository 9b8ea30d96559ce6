package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record with the requested id does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique column (e.g. email) already holds the value
	ErrDuplicate = errors.New("duplicate record")
)
