package get_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeBookingRepo struct {
	booking *domain.Booking
	all     []*domain.Booking
	getErr  error
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) ListAll(context.Context) ([]*domain.Booking, error) {
	return f.all, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_ReturnsDetailWithReferenceID(t *testing.T) {
	target := &domain.Booking{
		ID:         2,
		MediaID:    1,
		CustomerID: 3,
		StartDate:  date(2026, time.May, 1),
		EndDate:    date(2026, time.May, 31),
		Status:     domain.StatusUpcoming,
		Amount:     decimal.NewFromInt(50000),
		AmountPaid: decimal.NewFromInt(50000),
		Version:    1,
	}
	repo := &fakeBookingRepo{
		booking: target,
		all: []*domain.Booking{
			{ID: 1, StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 30)},
			target,
			{ID: 3, StartDate: date(2026, time.June, 1), EndDate: date(2026, time.June, 30)},
		},
	}
	uc := newTestUseCase(repo, date(2026, time.April, 15))

	resp, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)

	// second position in start-date order within FY 2026-27
	assert.Equal(t, "SRA/2627/1002", resp.ReferenceID)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Status)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
}

func TestExecute_StatusDerivedAtReadTime(t *testing.T) {
	// stored status is stale; today falls inside the range
	target := &domain.Booking{
		ID:        2,
		StartDate: date(2026, time.May, 1),
		EndDate:   date(2026, time.May, 31),
		Status:    domain.StatusUpcoming,
		Amount:    decimal.NewFromInt(50000),
	}
	repo := &fakeBookingRepo{booking: target, all: []*domain.Booking{target}}
	uc := newTestUseCase(repo, date(2026, time.May, 15))

	resp, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
}

func TestExecute_CancelledStaysCancelled(t *testing.T) {
	target := &domain.Booking{
		ID:        2,
		StartDate: date(2026, time.May, 1),
		EndDate:   date(2026, time.May, 31),
		Status:    domain.StatusCancelled,
	}
	repo := &fakeBookingRepo{booking: target, all: []*domain.Booking{target}}
	uc := newTestUseCase(repo, date(2026, time.May, 15))

	resp, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, string(domain.PaymentCancelled), resp.PaymentStatus)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(repo, date(2026, time.May, 15))

	_, err := uc.Execute(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_DeletedBookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 2, Deleted: true}}
	uc := newTestUseCase(repo, date(2026, time.May, 15))

	_, err := uc.Execute(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, date(2026, time.May, 15))

	_, err := uc.Execute(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
