package taxes

import (
	"context"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// InstallmentRepository installment schedule persistence
type InstallmentRepository interface {
	BulkCreate(ctx context.Context, installments []domain.TaxInstallment) error
	ListByAgreement(ctx context.Context, agreementID int64) ([]*domain.TaxInstallment, error)
	DeletePendingByAgreement(ctx context.Context, agreementID int64) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
