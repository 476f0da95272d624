package list_bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeBookingRepo struct {
	filtered []*domain.Booking
	all      []*domain.Booking

	gotFilter domain.BookingFilter
}

func (f *fakeBookingRepo) ListByFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.filtered, nil
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

func TestExecute_ReferenceIDsRankedOverFullPopulation(t *testing.T) {
	b1 := &domain.Booking{ID: 1, MediaID: 1, StartDate: date(2026, time.April, 1), EndDate: date(2026, time.April, 30), Amount: decimal.NewFromInt(1000)}
	b2 := &domain.Booking{ID: 2, MediaID: 2, StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 31), Amount: decimal.NewFromInt(1000)}

	// filter matches only the second booking; its sequence number must
	// still reflect its global position
	repo := &fakeBookingRepo{
		filtered: []*domain.Booking{b2},
		all:      []*domain.Booking{b1, b2},
	}
	uc := newTestUseCase(repo, date(2026, time.March, 1))

	resp, err := uc.Execute(context.Background(), &Request{MediaID: ptr.Ptr(int64(2))})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "SRA/2627/1002", resp.Bookings[0].ReferenceID)
	require.NotNil(t, repo.gotFilter.MediaID)
	assert.Equal(t, int64(2), *repo.gotFilter.MediaID)
}

func TestExecute_StatusesDerivedAtReadTime(t *testing.T) {
	stale := &domain.Booking{
		ID:        1,
		StartDate: date(2026, time.May, 1),
		EndDate:   date(2026, time.May, 31),
		Status:    domain.StatusUpcoming, // stored value lags the calendar
		Amount:    decimal.NewFromInt(1000),
	}
	repo := &fakeBookingRepo{filtered: []*domain.Booking{stale}, all: []*domain.Booking{stale}}
	uc := newTestUseCase(repo, date(2026, time.June, 10))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, string(domain.StatusCompleted), resp.Bookings[0].Status)
	assert.Equal(t, string(domain.PaymentPending), resp.Bookings[0].PaymentStatus)
}

func TestExecute_StatusFilterPassedThrough(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, date(2026, time.June, 10))

	_, err := uc.Execute(context.Background(), &Request{Status: ptr.Ptr(string(domain.StatusActive))})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusActive, *repo.gotFilter.Status)
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, date(2026, time.June, 10))

	_, err := uc.Execute(context.Background(), &Request{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyResult(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, date(2026, time.June, 10))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}
