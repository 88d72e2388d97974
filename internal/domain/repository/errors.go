package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on a uniqueness violation.
	ErrConflict = errors.New("already exists")
)
