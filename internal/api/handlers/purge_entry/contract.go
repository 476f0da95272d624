package purge_entry

import (
	"context"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

type RecycleBinService interface {
	PermanentDelete(ctx context.Context, entityType domain.EntityType, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
