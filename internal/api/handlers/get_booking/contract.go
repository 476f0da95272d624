package get_booking

import (
	"context"

	getBooking "github.com/skyreach/OOH-BookingService/internal/usecase/get_booking"
)

type GetBookingUseCase interface {
	Execute(ctx context.Context, id int64) (*getBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
