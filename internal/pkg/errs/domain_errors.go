package errs

import "errors"

// Error kinds shared by the usecase and handler layers.
// Package-level sentinels are marked with one of these so the handler can map
// them to a status code without knowing every domain package.
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Lookup errors
	ErrNotFound = errors.New("not found")

	// Booking errors
	ErrUnavailable = errors.New("not available")
	ErrConflict    = errors.New("conflict")

	// Access errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
