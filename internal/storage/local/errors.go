package local

import "errors"

var (
	// ErrNotFound is returned when no value is stored under a key
	ErrNotFound = errors.New("not found")
)
