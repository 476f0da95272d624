package update_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist or
	// sits in the recycle bin
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrDateConflict is returned when the edited range overlaps another
	// booking of the same media unit
	ErrDateConflict = errors.New("update_booking: dates conflict with an existing booking")

	// ErrVersionConflict is returned when the caller's version is stale
	ErrVersionConflict = errors.New("update_booking: booking was modified by another request")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("update_booking: internal error")
)
