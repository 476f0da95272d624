package update_agreement

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// AgreementRepository agreement persistence
type AgreementRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TenderAgreement, error)
	Update(ctx context.Context, a *domain.TenderAgreement) error
}

// TaxScheduler installment schedule regeneration
type TaxScheduler interface {
	RegenerateForAgreement(ctx context.Context, a *domain.TenderAgreement) error
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
