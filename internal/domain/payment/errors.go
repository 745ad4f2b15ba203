package payment

import "errors"

var (
	// ErrConfiguration is returned when the settlement or primary currency cannot be resolved.
	ErrConfiguration = errors.New("payment configuration error")

	// ErrNotFound is returned when an entity referenced by the order cannot be resolved.
	ErrNotFound = errors.New("referenced entity not found")
)
