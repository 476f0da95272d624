package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrVersionConflict is returned when a version-guarded update loses
	// to a concurrent writer (optimistic lock mismatch)
	ErrVersionConflict = errors.New("booking.repository: version conflict")

	// ErrBuildQuery is returned when SQL construction fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
