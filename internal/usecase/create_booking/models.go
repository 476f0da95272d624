package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request create booking request
type Request struct {
	MediaID    int64
	CustomerID int64
	StartDate  time.Time // date only, time component ignored
	EndDate    time.Time
	Amount     decimal.Decimal
	AmountPaid decimal.Decimal
	Notes      *string
}

// Response created booking
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
	return "create_booking: dates conflict with an existing booking"
}

// Unwrap makes errors.Is(err, ErrDateConflict) hold.
func (e *ConflictError) Unwrap() error {
	return ErrDateConflict
}
