package update_agreement

import (
	"context"

	updateAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/update_agreement"
)

type UpdateAgreementUseCase interface {
	Execute(ctx context.Context, req *updateAgreement.Request) (*updateAgreement.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
