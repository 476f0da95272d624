package availability

import "errors"

var (
	// ErrInvalidRange is returned when startDate is after endDate
	ErrInvalidRange = errors.New("availability: start date is after end date")

	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("availability: internal error")
)
