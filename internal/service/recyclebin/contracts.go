package recyclebin

import (
	"context"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// BookingRepository booking queries and tombstone operations
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListDeleted(ctx context.Context) ([]*domain.Booking, error)
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// MediaRepository media unit tombstone operations
type MediaRepository interface {
	ListDeleted(ctx context.Context) ([]*domain.MediaUnit, error)
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// CustomerRepository customer tombstone operations
type CustomerRepository interface {
	ListDeleted(ctx context.Context) ([]*domain.Customer, error)
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// AgreementRepository agreement tombstone and purge operations
type AgreementRepository interface {
	ListDeleted(ctx context.Context) ([]*domain.TenderAgreement, error)
	ListPurgeable(ctx context.Context, cutoff time.Time) ([]*domain.TenderAgreement, error)
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// InstallmentRepository installment tombstone and purge operations
type InstallmentRepository interface {
	ListDeleted(ctx context.Context) ([]*domain.TaxInstallment, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
