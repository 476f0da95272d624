package delete_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

// UseCase soft-deletes a booking and runs the release cascade: the
// calendar entry is dropped, the media unit may revert to available,
// and the customer's counters give the booking back.
type UseCase struct {
	bookingRepo BookingRepository
	mediaSync   MediaSynchronizer
	ledger      Ledger
	cascades    CascadeRunner
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	mediaSync MediaSynchronizer,
	ledger Ledger,
	cascades CascadeRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		mediaSync:   mediaSync,
		ledger:      ledger,
		cascades:    cascades,
		logger:      logger,
	}
}

// Execute moves the booking to the recycle bin.
func (uc *UseCase) Execute(ctx context.Context, id int64) error {
	uc.logger.Info("DeleteBooking: id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("DeleteBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		uc.logger.Error("DeleteBooking: failed to get booking id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if booking.Deleted {
		uc.logger.Warn("DeleteBooking: booking id=%d already deleted", id)
		return ErrBookingNotFound
	}

	if err := uc.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("DeleteBooking: soft delete failed for id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteBooking: id=%d moved to recycle bin", id)

	uc.cascades.Run(ctx, "DeleteBooking", []cascade.Task{
		{Name: "syncCalendar", Run: func(ctx context.Context) error {
			return uc.mediaSync.RemoveCalendar(ctx, booking.ID)
		}},
		{Name: "syncMediaStatus", Run: func(ctx context.Context) error {
			return uc.mediaSync.SyncStatus(ctx, booking.MediaID)
		}},
		{Name: "reconcileCustomer", Run: func(ctx context.Context) error {
			return uc.ledger.OnBookingDeleted(ctx, booking.CustomerID, booking.AmountPaid)
		}},
	})

	return nil
}
