package order

import "errors"

var (
	// ErrNotFound is returned when order is not found
	ErrNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned for status codes outside the known set
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrCannotMarkPaid is returned when a cancelled, refunded or voided order is marked as paid
	ErrCannotMarkPaid = errors.New("order cannot be marked as paid")

	// ErrInvalidQuery is returned when order query validation fails
	ErrInvalidQuery = errors.New("invalid orders query")
)
