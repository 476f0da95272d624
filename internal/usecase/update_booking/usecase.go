package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

// UseCase edits a booking under optimistic locking: status
// re-derivation, conflict re-check when the occupied interval changes,
// version-guarded commit, post-commit cascade.
type UseCase struct {
	bookingRepo  BookingRepository
	resolver     ConflictResolver
	mediaSync    MediaSynchronizer
	ledger       Ledger
	cascades     CascadeRunner
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	resolver ConflictResolver,
	mediaSync MediaSynchronizer,
	ledger Ledger,
	cascades CascadeRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resolver:     resolver,
		mediaSync:    mediaSync,
		ledger:       ledger,
		cascades:     cascades,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute applies the edit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d version=%d", req.ID, req.Version)

	// 1. Validate the payload
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Load the current row
	current, err := uc.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if current.Deleted {
		uc.logger.Warn("UpdateBooking: booking id=%d is in the recycle bin", req.ID)
		return nil, ErrBookingNotFound
	}

	// 3. Merge the edit over the current state
	updated := *current
	if req.StartDate != nil {
		updated.StartDate = domain.DateOnly(*req.StartDate)
	}
	if req.EndDate != nil {
		updated.EndDate = domain.DateOnly(*req.EndDate)
	}
	if updated.StartDate.After(updated.EndDate) {
		uc.logger.Warn("UpdateBooking: id=%d startDate after endDate", req.ID)
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.AmountPaid != nil {
		updated.AmountPaid = *req.AmountPaid
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}

	// 4. Lifecycle status: derived from dates unless explicitly overridden
	if req.AutoStatus == nil || *req.AutoStatus {
		updated.Status = domain.DeriveStatus(current.Status, now, updated.StartDate, updated.EndDate)
	} else {
		updated.Status = domain.BookingStatus(*req.Status)
	}
	updated.PaymentStatus = domain.DerivePaymentStatus(updated.Status, updated.Amount, updated.AmountPaid)

	// 5. Re-run the conflict check, excluding this booking, when the
	// dates moved or when the booking re-enters the blocking set: a
	// booking revived out of cancelled must not overlap anything that
	// was created while its interval was free. A booking that no longer
	// blocks the unit cannot conflict.
	datesChanged := !updated.StartDate.Equal(current.StartDate) || !updated.EndDate.Equal(current.EndDate)
	revived := current.Status == domain.StatusCancelled && updated.Status != domain.StatusCancelled
	if (datesChanged || revived) && updated.BlocksMedia() {
		conflict, err := uc.resolver.FindConflict(ctx, updated.MediaID, updated.StartDate, updated.EndDate, &req.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: conflict check failed: %v", err)
			return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("UpdateBooking: id=%d range blocked by booking id=%d", req.ID, conflict.ID)
			return nil, &ConflictError{
				BookingID: conflict.ID,
				StartDate: conflict.StartDate,
				EndDate:   conflict.EndDate,
			}
		}
	}

	// 6. Version-guarded commit
	if err := uc.bookingRepo.UpdateWithVersion(ctx, &updated, req.Version); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrVersionConflict):
			uc.logger.Warn("UpdateBooking: id=%d stale version %d", req.ID, req.Version)
			return nil, ErrVersionConflict
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			uc.logger.Error("UpdateBooking: commit failed for id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateBooking: id=%d committed version=%d status=%s payment=%s",
		updated.ID, updated.Version, updated.Status, updated.PaymentStatus)

	// 7. Post-commit cascade
	paidDelta := updated.AmountPaid.Sub(current.AmountPaid)
	uc.cascades.Run(ctx, "UpdateBooking", []cascade.Task{
		{Name: "syncCalendar", Run: func(ctx context.Context) error {
			return uc.mediaSync.RefreshCalendar(ctx, &updated)
		}},
		{Name: "syncMediaStatus", Run: func(ctx context.Context) error {
			return uc.mediaSync.SyncStatus(ctx, updated.MediaID)
		}},
		{Name: "reconcileCustomer", Run: func(ctx context.Context) error {
			return uc.ledger.OnAmountPaidChanged(ctx, updated.CustomerID, paidDelta)
		}},
	})

	return &Response{
		ID:            updated.ID,
		MediaID:       updated.MediaID,
		CustomerID:    updated.CustomerID,
		StartDate:     updated.StartDate,
		EndDate:       updated.EndDate,
		Status:        string(updated.Status),
		Amount:        updated.Amount,
		AmountPaid:    updated.AmountPaid,
		PaymentStatus: string(updated.PaymentStatus),
		Notes:         updated.Notes,
		Version:       updated.Version,
		CreatedAt:     updated.CreatedAt,
		UpdatedAt:     updated.UpdatedAt,
	}, nil
}
