package delete_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	deleteErr error

	deletedID int64
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) SoftDelete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeSync struct {
	removedBookingID int64
	syncedMediaID    int64
	removeErr        error
}

func (f *fakeSync) RemoveCalendar(_ context.Context, bookingID int64) error {
	f.removedBookingID = bookingID
	return f.removeErr
}

func (f *fakeSync) SyncStatus(_ context.Context, mediaID int64) error {
	f.syncedMediaID = mediaID
	return nil
}

type fakeLedger struct {
	customerID int64
	amountPaid decimal.Decimal
	called     bool
}

func (f *fakeLedger) OnBookingDeleted(_ context.Context, customerID int64, amountPaid decimal.Decimal) error {
	f.called = true
	f.customerID = customerID
	f.amountPaid = amountPaid
	return nil
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         5,
		MediaID:    1,
		CustomerID: 2,
		StartDate:  time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
		AmountPaid: decimal.NewFromInt(10000),
	}
}

func TestExecute_SoftDeletesAndCascades(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	sync := &fakeSync{}
	ledger := &fakeLedger{}
	uc := NewUseCase(repo, sync, ledger, cascade.NewRunner(nopLogger{}), nopLogger{})

	err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.deletedID)
	assert.Equal(t, int64(5), sync.removedBookingID)
	assert.Equal(t, int64(1), sync.syncedMediaID)
	assert.True(t, ledger.called)
	assert.Equal(t, int64(2), ledger.customerID)
	assert.True(t, ledger.amountPaid.Equal(decimal.NewFromInt(10000)))
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, &fakeSync{}, &fakeLedger{}, cascade.NewRunner(nopLogger{}), nopLogger{})

	err := uc.Execute(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyDeleted(t *testing.T) {
	b := testBooking()
	b.Deleted = true
	repo := &fakeBookingRepo{booking: b}
	uc := NewUseCase(repo, &fakeSync{}, &fakeLedger{}, cascade.NewRunner(nopLogger{}), nopLogger{})

	err := uc.Execute(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Zero(t, repo.deletedID)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSync{}, &fakeLedger{}, cascade.NewRunner(nopLogger{}), nopLogger{})

	err := uc.Execute(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CascadeFailureDoesNotFailDelete(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	sync := &fakeSync{removeErr: errors.New("calendar delete failed")}
	ledger := &fakeLedger{}
	uc := NewUseCase(repo, sync, ledger, cascade.NewRunner(nopLogger{}), nopLogger{})

	err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)
	// remaining tasks still ran
	assert.Equal(t, int64(1), sync.syncedMediaID)
	assert.True(t, ledger.called)
}
