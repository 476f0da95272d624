package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	conflict *domain.Booking
	err      error

	gotMediaID       int64
	gotStart, gotEnd time.Time
	gotExclude       *int64
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, mediaID int64, start, end time.Time, excludeID *int64) (*domain.Booking, error) {
	f.gotMediaID = mediaID
	f.gotStart, f.gotEnd = start, end
	f.gotExclude = excludeID
	return f.conflict, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFindConflict_FreeRange(t *testing.T) {
	repo := &fakeBookingRepo{}
	s := NewService(repo, nopLogger{})

	conflict, err := s.FindConflict(context.Background(), 1, date(2026, time.May, 1), date(2026, time.May, 31), nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)
	assert.Equal(t, int64(1), repo.gotMediaID)
}

func TestFindConflict_BlockedRange(t *testing.T) {
	blocker := &domain.Booking{ID: 7, StartDate: date(2026, time.May, 10), EndDate: date(2026, time.May, 20)}
	repo := &fakeBookingRepo{conflict: blocker}
	s := NewService(repo, nopLogger{})

	conflict, err := s.FindConflict(context.Background(), 1, date(2026, time.May, 1), date(2026, time.May, 31), nil)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(7), conflict.ID)
}

func TestFindConflict_ExcludePassedThrough(t *testing.T) {
	repo := &fakeBookingRepo{}
	s := NewService(repo, nopLogger{})

	exclude := int64(5)
	_, err := s.FindConflict(context.Background(), 1, date(2026, time.May, 1), date(2026, time.May, 31), &exclude)
	require.NoError(t, err)
	require.NotNil(t, repo.gotExclude)
	assert.Equal(t, int64(5), *repo.gotExclude)
}

func TestFindConflict_InvalidRange(t *testing.T) {
	s := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := s.FindConflict(context.Background(), 1, date(2026, time.May, 31), date(2026, time.May, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestFindConflict_SingleDayRangeAllowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	s := NewService(repo, nopLogger{})

	day := date(2026, time.May, 1)
	_, err := s.FindConflict(context.Background(), 1, day, day, nil)
	require.NoError(t, err)
	assert.Equal(t, day, repo.gotStart)
	assert.Equal(t, day, repo.gotEnd)
}

func TestFindConflict_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	s := NewService(repo, nopLogger{})

	_, err := s.FindConflict(context.Background(), 1, date(2026, time.May, 1), date(2026, time.May, 31), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
