package list_bookings

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// BookingRepository booking queries
type BookingRepository interface {
	ListByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
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
