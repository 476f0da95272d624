package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMediaRepo struct {
	unit     *domain.MediaUnit
	calendar []domain.CalendarEntry
	getErr   error
}

func (f *fakeMediaRepo) GetByID(context.Context, int64) (*domain.MediaUnit, error) {
	return f.unit, f.getErr
}

func (f *fakeMediaRepo) ListCalendar(context.Context, int64) ([]domain.CalendarEntry, error) {
	return f.calendar, nil
}

type fakeBookingRepo struct {
	all []*domain.Booking
}

func (f *fakeBookingRepo) ListAll(context.Context) ([]*domain.Booking, error) {
	return f.all, nil
}

type fakeResolver struct {
	conflict *domain.Booking
	called   bool
}

func (f *fakeResolver) FindConflict(_ context.Context, _ int64, _, _ time.Time, _ *int64) (*domain.Booking, error) {
	f.called = true
	return f.conflict, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availableUnit() *domain.MediaUnit {
	return &domain.MediaUnit{ID: 1, Code: "MH-PUN-001", Status: domain.MediaAvailable}
}

func TestExecute_CalendarOnlyWithoutRange(t *testing.T) {
	media := &fakeMediaRepo{
		unit: availableUnit(),
		calendar: []domain.CalendarEntry{
			{MediaID: 1, BookingID: 7, StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 31)},
		},
	}
	resolver := &fakeResolver{}
	uc := NewUseCase(media, &fakeBookingRepo{}, resolver, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MediaID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.MediaAvailable), resp.Status)
	require.Len(t, resp.Calendar, 1)
	assert.Equal(t, int64(7), resp.Calendar[0].BookingID)
	assert.Nil(t, resp.Available)
	assert.False(t, resolver.called)
}

func TestExecute_FreeRange(t *testing.T) {
	uc := NewUseCase(&fakeMediaRepo{unit: availableUnit()}, &fakeBookingRepo{}, &fakeResolver{}, nopLogger{})

	start, end := date(2026, time.June, 1), date(2026, time.June, 30)
	resp, err := uc.Execute(context.Background(), &Request{MediaID: 1, StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	require.NotNil(t, resp.Available)
	assert.True(t, *resp.Available)
	assert.Nil(t, resp.ConflictingBookingID)
}

func TestExecute_BlockedRangeCarriesReference(t *testing.T) {
	blocker := &domain.Booking{ID: 7, StartDate: date(2026, time.May, 1), EndDate: date(2026, time.May, 31)}
	uc := NewUseCase(
		&fakeMediaRepo{unit: availableUnit()},
		&fakeBookingRepo{all: []*domain.Booking{blocker}},
		&fakeResolver{conflict: blocker},
		nopLogger{},
	)

	start, end := date(2026, time.May, 15), date(2026, time.June, 15)
	resp, err := uc.Execute(context.Background(), &Request{MediaID: 1, StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	require.NotNil(t, resp.Available)
	assert.False(t, *resp.Available)
	require.NotNil(t, resp.ConflictingBookingID)
	assert.Equal(t, int64(7), *resp.ConflictingBookingID)
	require.NotNil(t, resp.ConflictingReference)
	assert.Equal(t, "SRA/2627/1001", *resp.ConflictingReference)
}

func TestExecute_HalfOpenRangeRejected(t *testing.T) {
	uc := NewUseCase(&fakeMediaRepo{unit: availableUnit()}, &fakeBookingRepo{}, &fakeResolver{}, nopLogger{})

	start := date(2026, time.June, 1)
	_, err := uc.Execute(context.Background(), &Request{MediaID: 1, StartDate: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MediaNotFound(t *testing.T) {
	uc := NewUseCase(&fakeMediaRepo{getErr: mediaRepo.ErrMediaNotFound}, &fakeBookingRepo{}, &fakeResolver{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{MediaID: 1})
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestExecute_DeletedMediaNotFound(t *testing.T) {
	unit := availableUnit()
	unit.Deleted = true
	uc := NewUseCase(&fakeMediaRepo{unit: unit}, &fakeBookingRepo{}, &fakeResolver{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{MediaID: 1})
	assert.ErrorIs(t, err, ErrMediaNotFound)
}
