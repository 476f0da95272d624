package delete_booking

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

// BookingRepository booking persistence
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SoftDelete(ctx context.Context, id int64) error
}

// MediaSynchronizer media status and calendar maintenance
type MediaSynchronizer interface {
	RemoveCalendar(ctx context.Context, bookingID int64) error
	SyncStatus(ctx context.Context, mediaID int64) error
}

// Ledger customer counter reconciliation
type Ledger interface {
	OnBookingDeleted(ctx context.Context, customerID int64, amountPaid decimal.Decimal) error
}

// CascadeRunner post-commit follow-up execution
type CascadeRunner interface {
	Run(ctx context.Context, operation string, tasks []cascade.Task)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
