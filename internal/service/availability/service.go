// Package availability implements the booking conflict resolver: overlap
// detection across a media unit's active bookings.
//
// The resolver is a pure query with no side effects. It is not executed
// inside a transaction with the booking commit that follows it, so two
// concurrent create requests can both pass the check (check-then-act
// window); the last committer wins and the overlap is detected by later
// checks and reports. This trade-off is deliberate: booking operations
// are human-paced and a serializable transaction was judged not worth
// the cost.
package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// Service resolves date-range conflicts for media units
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates an availability service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// FindConflict returns the first non-deleted, non-cancelled booking of
// the media unit whose closed date interval overlaps [start, end], or
// nil when the range is free. Touching endpoints count as conflicting.
// excludeBookingID removes the booking being edited from consideration
// so a booking never conflicts with itself.
func (s *Service) FindConflict(ctx context.Context, mediaID int64, start, end time.Time, excludeBookingID *int64) (*domain.Booking, error) {
	if domain.DateOnly(start).After(domain.DateOnly(end)) {
		return nil, ErrInvalidRange
	}

	conflict, err := s.bookingRepo.FindOverlapping(ctx, mediaID, start, end, excludeBookingID)
	if err != nil {
		s.logger.Error("FindConflict: overlap query failed for media=%d: %v", mediaID, err)
		return nil, fmt.Errorf("%w: FindConflict - repository error: %v", ErrInternal, err)
	}

	if conflict != nil {
		s.logger.Info("FindConflict: media=%d range %s..%s blocked by booking id=%d",
			mediaID, start.Format(domain.DateFormat), end.Format(domain.DateFormat), conflict.ID)
	}

	return conflict, nil
}
