package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
)

// Request availability probe. StartDate/EndDate are optional: without a
// range the response carries only the unit status and occupied calendar.
type Request struct {
	MediaID   int64
	StartDate *time.Time
	EndDate   *time.Time
}

// OccupiedInterval one booked interval on the unit's calendar
type OccupiedInterval struct {
	BookingID int64
	StartDate time.Time
	EndDate   time.Time
}

// Response availability probe result
type Response struct {
	MediaID  int64
	Status   string
	Calendar []OccupiedInterval

	// Range probe results, set only when a range was requested.
	Available            *bool
	ConflictingBookingID *int64
	ConflictingReference *string
}

// UseCase answers "is this unit free over these dates" plus the full
// occupied calendar of the unit.
type UseCase struct {
	mediaRepo   MediaRepository
	bookingRepo BookingRepository
	resolver    ConflictResolver
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(mediaRepo MediaRepository, bookingRepo BookingRepository, resolver ConflictResolver, logger Logger) *UseCase {
	return &UseCase{
		mediaRepo:   mediaRepo,
		bookingRepo: bookingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// Execute runs the availability probe.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.MediaID <= 0 {
		return nil, fmt.Errorf("%w: mediaId must be positive", ErrInvalidInput)
	}
	if (req.StartDate == nil) != (req.EndDate == nil) {
		return nil, fmt.Errorf("%w: startDate and endDate must be given together", ErrInvalidInput)
	}

	media, err := uc.mediaRepo.GetByID(ctx, req.MediaID)
	if err != nil {
		if errors.Is(err, mediaRepo.ErrMediaNotFound) {
			uc.logger.Warn("CheckAvailability: media unit id=%d not found", req.MediaID)
			return nil, ErrMediaNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get media unit id=%d: %v", req.MediaID, err)
		return nil, fmt.Errorf("%w: failed to get media unit: %v", ErrInternal, err)
	}
	if media.Deleted {
		return nil, ErrMediaNotFound
	}

	calendar, err := uc.mediaRepo.ListCalendar(ctx, req.MediaID)
	if err != nil {
		uc.logger.Error("CheckAvailability: calendar query failed for media=%d: %v", req.MediaID, err)
		return nil, fmt.Errorf("%w: failed to list calendar: %v", ErrInternal, err)
	}

	resp := &Response{
		MediaID:  media.ID,
		Status:   string(media.Status),
		Calendar: make([]OccupiedInterval, 0, len(calendar)),
	}
	for _, entry := range calendar {
		resp.Calendar = append(resp.Calendar, OccupiedInterval{
			BookingID: entry.BookingID,
			StartDate: entry.StartDate,
			EndDate:   entry.EndDate,
		})
	}

	if req.StartDate == nil {
		return resp, nil
	}

	if domain.DateOnly(*req.StartDate).After(domain.DateOnly(*req.EndDate)) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	conflict, err := uc.resolver.FindConflict(ctx, req.MediaID, *req.StartDate, *req.EndDate, nil)
	if err != nil {
		uc.logger.Error("CheckAvailability: conflict check failed for media=%d: %v", req.MediaID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	available := conflict == nil
	resp.Available = &available

	if conflict != nil {
		resp.ConflictingBookingID = &conflict.ID

		all, err := uc.bookingRepo.ListAll(ctx)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to rank bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to rank bookings: %v", ErrInternal, err)
		}
		if ref, ok := domain.AssignReferenceIDs(all)[conflict.ID]; ok {
			resp.ConflictingReference = &ref
		}
	}

	return resp, nil
}
