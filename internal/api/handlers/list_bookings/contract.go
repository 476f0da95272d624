package list_bookings

import (
	"context"

	listBookings "github.com/skyreach/OOH-BookingService/internal/usecase/list_bookings"
)

type ListBookingsUseCase interface {
	Execute(ctx context.Context, req *listBookings.Request) (*listBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
