package delete_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or
	// is already in the recycle bin
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("delete_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("delete_booking: internal error")
)
