package update_booking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

// BookingRepository booking persistence with optimistic locking
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateWithVersion(ctx context.Context, b *domain.Booking, expectedVersion int64) error
}

// ConflictResolver date-range overlap detection
type ConflictResolver interface {
	FindConflict(ctx context.Context, mediaID int64, start, end time.Time, excludeBookingID *int64) (*domain.Booking, error)
}

// MediaSynchronizer media status and calendar maintenance
type MediaSynchronizer interface {
	RefreshCalendar(ctx context.Context, b *domain.Booking) error
	SyncStatus(ctx context.Context, mediaID int64) error
}

// Ledger customer counter reconciliation
type Ledger interface {
	OnAmountPaidChanged(ctx context.Context, customerID int64, delta decimal.Decimal) error
}

// CascadeRunner post-commit follow-up execution
type CascadeRunner interface {
	Run(ctx context.Context, operation string, tasks []cascade.Task)
}

// TimeProvider provides the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
