package get_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or
	// sits in the recycle bin
	ErrBookingNotFound = errors.New("get_booking: booking not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("get_booking: internal error")
)
