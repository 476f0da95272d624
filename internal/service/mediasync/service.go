// Package mediasync keeps a media unit's derived status and booking
// calendar consistent with booking mutations.
//
// The sync is a read-then-write that is not transactional with the
// booking write that triggered it. A crash in between leaves the unit
// stale until the next triggering mutation re-runs the sync; the
// operation is idempotent, so the state self-heals.
package mediasync

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
)

// Service synchronizes media state after booking mutations
type Service struct {
	bookingRepo BookingRepository
	mediaRepo   MediaRepository
	logger      Logger
}

// NewService creates a media synchronizer.
func NewService(bookingRepo BookingRepository, mediaRepo MediaRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mediaRepo:   mediaRepo,
		logger:      logger,
	}
}

// SyncStatus recomputes the media unit's availability status: booked
// when any non-deleted, non-cancelled booking is currently active,
// otherwise booked reverts to available. Operator-set maintenance and
// coming_soon statuses are never overwritten.
func (s *Service) SyncStatus(ctx context.Context, mediaID int64) error {
	unit, err := s.mediaRepo.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, mediaRepo.ErrMediaNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("%w: SyncStatus - get media: %v", ErrInternal, err)
	}

	hasActive, err := s.bookingRepo.HasActiveForMedia(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("%w: SyncStatus - active booking query: %v", ErrInternal, err)
	}

	next, write := domain.NextMediaStatus(unit.Status, hasActive)
	if !write {
		return nil
	}

	if err := s.mediaRepo.UpdateStatus(ctx, mediaID, next); err != nil {
		return fmt.Errorf("%w: SyncStatus - update status: %v", ErrInternal, err)
	}

	s.logger.Info("SyncStatus: media=%d status %s -> %s", mediaID, unit.Status, next)
	return nil
}

// RefreshCalendar replaces the booking's interval on the media calendar.
// The old entry is removed first; a new one is inserted only while the
// booking still blocks the unit (not cancelled, not deleted).
func (s *Service) RefreshCalendar(ctx context.Context, b *domain.Booking) error {
	if !b.BlocksMedia() {
		return s.RemoveCalendar(ctx, b.ID)
	}

	err := s.mediaRepo.ReplaceCalendarEntry(ctx, domain.CalendarEntry{
		MediaID:   b.MediaID,
		BookingID: b.ID,
		StartDate: domain.DateOnly(b.StartDate),
		EndDate:   domain.DateOnly(b.EndDate),
	})
	if err != nil {
		return fmt.Errorf("%w: RefreshCalendar - replace entry: %v", ErrInternal, err)
	}

	return nil
}

// RemoveCalendar drops the booking's interval from the calendar.
func (s *Service) RemoveCalendar(ctx context.Context, bookingID int64) error {
	if err := s.mediaRepo.RemoveCalendarEntry(ctx, bookingID); err != nil {
		return fmt.Errorf("%w: RemoveCalendar - remove entry: %v", ErrInternal, err)
	}
	return nil
}
