package check_availability

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// MediaRepository media unit and calendar queries
type MediaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MediaUnit, error)
	ListCalendar(ctx context.Context, mediaID int64) ([]domain.CalendarEntry, error)
}

// BookingRepository booking queries needed for reference ranking
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// ConflictResolver date-range overlap detection
type ConflictResolver interface {
	FindConflict(ctx context.Context, mediaID int64, start, end time.Time, excludeBookingID *int64) (*domain.Booking, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
