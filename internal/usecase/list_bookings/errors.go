package list_bookings

import "errors"

var (
	// ErrInvalidInput is returned on malformed filter values
	ErrInvalidInput = errors.New("list_bookings: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("list_bookings: internal error")
)
