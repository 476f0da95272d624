package mediasync

import (
	"context"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// BookingRepository booking queries needed by the synchronizer
type BookingRepository interface {
	HasActiveForMedia(ctx context.Context, mediaID int64) (bool, error)
}

// MediaRepository media unit state and calendar maintenance
type MediaRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MediaUnit, error)
	UpdateStatus(ctx context.Context, id int64, status domain.MediaStatus) error
	ReplaceCalendarEntry(ctx context.Context, entry domain.CalendarEntry) error
	RemoveCalendarEntry(ctx context.Context, bookingID int64) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
