package list_recycle_bin

import (
	"context"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

type RecycleBinService interface {
	ListDeleted(ctx context.Context) ([]domain.RecycleBinEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
