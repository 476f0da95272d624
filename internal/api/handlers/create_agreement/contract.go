package create_agreement

import (
	"context"

	createAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/create_agreement"
)

type CreateAgreementUseCase interface {
	Execute(ctx context.Context, req *createAgreement.Request) (*createAgreement.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
