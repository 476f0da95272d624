package update_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request update booking request. Nil pointer fields stay unchanged.
// Version is the version the caller read; the write fails with
// ErrVersionConflict when it no longer matches.
//
// Status handling: with AutoStatus absent or true the lifecycle status
// is re-derived from the (possibly edited) dates and an explicit Status
// is rejected; with AutoStatus=false an explicit Status is required and
// written as-is (the manual escape hatch, e.g. cancellation).
type Request struct {
	ID      int64
	Version int64

	StartDate  *time.Time
	EndDate    *time.Time
	Amount     *decimal.Decimal
	AmountPaid *decimal.Decimal
	Notes      *string

	AutoStatus *bool
	Status     *string
}

// Response updated booking
type Response struct {
	ID            int64
	MediaID       int64
	CustomerID    int64
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus string
	Notes         *string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConflictError carries the blocking booking alongside ErrDateConflict.
type ConflictError struct {
	BookingID int64
	StartDate time.Time
	EndDate   time.Time
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return "update_booking: dates conflict with an existing booking"
}

// Unwrap makes errors.Is(err, ErrDateConflict) hold.
func (e *ConflictError) Unwrap() error {
	return ErrDateConflict
}
