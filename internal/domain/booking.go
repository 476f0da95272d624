package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the derived payment state of a booking
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentCancelled     PaymentStatus = "cancelled"
)

// Booking represents a reservation of one media unit by one customer
// for a closed date interval [StartDate, EndDate].
type Booking struct {
	ID         int64
	MediaID    int64
	CustomerID int64
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus

	Amount        decimal.Decimal // contracted total
	AmountPaid    decimal.Decimal // cumulative receipts
	PaymentStatus PaymentStatus

	Notes *string

	// Version is the optimistic concurrency counter, bumped on every write.
	Version int64

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BlocksMedia returns true if the booking counts against the media unit's
// availability: not soft-deleted and not cancelled.
func (b *Booking) BlocksMedia() bool {
	return !b.Deleted && b.Status != StatusCancelled
}

// ReferenceDate returns the date the booking is ranked and financial-year
// classified by: the start date, falling back to creation time.
func (b *Booking) ReferenceDate() time.Time {
	if !b.StartDate.IsZero() {
		return b.StartDate
	}
	return b.CreatedAt
}

// DateOnly normalizes a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Overlaps reports whether two closed date intervals conflict.
// Touching endpoints count as overlapping.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = DateOnly(aStart), DateOnly(aEnd)
	bStart, bEnd = DateOnly(bStart), DateOnly(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DeriveStatus computes the lifecycle status of a booking from its date
// bounds. Cancelled is sticky: derivation never moves a booking into or
// out of cancelled, only an explicit user action does.
func DeriveStatus(current BookingStatus, today, start, end time.Time) BookingStatus {
	if current == StatusCancelled {
		return StatusCancelled
	}

	today, start, end = DateOnly(today), DateOnly(start), DateOnly(end)

	switch {
	case today.Before(start):
		return StatusUpcoming
	case today.After(end):
		return StatusCompleted
	default:
		return StatusActive
	}
}

// DerivePaymentStatus computes the payment status from the contracted
// amount and cumulative receipts. A cancelled booking is always
// payment-cancelled regardless of amounts.
func DerivePaymentStatus(status BookingStatus, amount, amountPaid decimal.Decimal) PaymentStatus {
	if status == StatusCancelled {
		return PaymentCancelled
	}

	switch {
	case amountPaid.LessThanOrEqual(decimal.Zero):
		return PaymentPending
	case amountPaid.GreaterThanOrEqual(amount):
		return PaymentPaid
	default:
		return PaymentPartiallyPaid
	}
}

// ValidBookingStatus reports whether s is a known lifecycle status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// BookingFilter filter for booking listings
type BookingFilter struct {
	MediaID        *int64
	CustomerID     *int64
	Status         *BookingStatus
	IncludeDeleted bool
}
