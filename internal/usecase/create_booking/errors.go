package create_booking

import "errors"

var (
	// ErrMediaNotFound is returned when the media unit does not exist
	ErrMediaNotFound = errors.New("create_booking: media unit not found")

	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrDateConflict is returned when the requested range overlaps an
	// existing booking of the same media unit
	ErrDateConflict = errors.New("create_booking: dates conflict with an existing booking")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("create_booking: internal error")
)
