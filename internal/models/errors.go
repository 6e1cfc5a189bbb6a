package models

import "errors"

// Sentinel errors for the store and service layers. Handlers translate these
// into the HTTP taxonomy; anything else becomes a 500.
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSubEntryNotFound = errors.New("sub entry not found")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrInvalidInput     = errors.New("invalid input")
)
