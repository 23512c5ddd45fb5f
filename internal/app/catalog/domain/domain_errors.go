package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound = errors.New("product not found")

	// Store errors
	ErrStoreUnavailable   = errors.New("catalog store unavailable")
	ErrStoreNotConfigured = errors.New("catalog store not configured")

	// Value errors
	ErrInvalidPrice = errors.New("invalid price")
)
