package domain

import "errors"

// Sentinel errors surfaced by the store and transport layers. Callers
// match with errors.Is.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrMissingCredentials = errors.New("username, email and password are required")
	ErrInvalidLevel       = errors.New("invalid lesson level")
	ErrEmptySearch        = errors.New("search term is empty")
)
