package availability

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// BookingRepository booking queries needed by the resolver
type BookingRepository interface {
	FindOverlapping(ctx context.Context, mediaID int64, start, end time.Time, excludeID *int64) (*domain.Booking, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
