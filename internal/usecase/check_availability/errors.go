package check_availability

import "errors"

var (
	// ErrMediaNotFound is returned when the media unit does not exist
	ErrMediaNotFound = errors.New("check_availability: media unit not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal failures
	ErrInternal = errors.New("check_availability: internal error")
)
