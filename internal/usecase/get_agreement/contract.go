package get_agreement

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// AgreementRepository agreement queries
type AgreementRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TenderAgreement, error)
}

// TaxScheduler installment schedule queries
type TaxScheduler interface {
	ListForAgreement(ctx context.Context, agreementID int64, now time.Time) ([]*domain.TaxInstallment, error)
}

// TimeProvider provides the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
