package get_agreement

import (
	"context"

	getAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/get_agreement"
)

type GetAgreementUseCase interface {
	Execute(ctx context.Context, id int64) (*getAgreement.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
