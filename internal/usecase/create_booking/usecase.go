package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	customerRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/customer"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
	"github.com/skyreach/OOH-BookingService/internal/service/cascade"
)

// UseCase creates a booking: conflict check, status derivation, commit,
// post-commit cascade (calendar, media status, customer counters).
type UseCase struct {
	bookingRepo  BookingRepository
	mediaRepo    MediaRepository
	customerRepo CustomerRepository
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
	mediaRepo MediaRepository,
	customerRepo CustomerRepository,
	resolver ConflictResolver,
	mediaSync MediaSynchronizer,
	ledger Ledger,
	cascades CascadeRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		mediaRepo:    mediaRepo,
		customerRepo: customerRepo,
		resolver:     resolver,
		mediaSync:    mediaSync,
		ledger:       ledger,
		cascades:     cascades,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a booking.
//
// The conflict check and the insert are not one transaction: two
// concurrent requests for the same range can both pass the check. The
// window is accepted; overlaps slipping through surface on later edits.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: media=%d, customer=%d, range %s..%s",
		req.MediaID, req.CustomerID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Validate the payload
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. The media unit must exist and not be in the recycle bin
	media, err := uc.mediaRepo.GetByID(ctx, req.MediaID)
	if err != nil {
		if errors.Is(err, mediaRepo.ErrMediaNotFound) {
			uc.logger.Warn("CreateBooking: media unit id=%d not found", req.MediaID)
			return nil, ErrMediaNotFound
		}
		uc.logger.Error("CreateBooking: failed to get media unit id=%d: %v", req.MediaID, err)
		return nil, fmt.Errorf("%w: failed to get media unit: %v", ErrInternal, err)
	}
	if media.Deleted {
		uc.logger.Warn("CreateBooking: media unit id=%d is in the recycle bin", req.MediaID)
		return nil, ErrMediaNotFound
	}

	// 3. Same for the customer
	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if customer.Deleted {
		uc.logger.Warn("CreateBooking: customer id=%d is in the recycle bin", req.CustomerID)
		return nil, ErrCustomerNotFound
	}

	// 4. Conflict check over the unit's active bookings
	conflict, err := uc.resolver.FindConflict(ctx, req.MediaID, req.StartDate, req.EndDate, nil)
	if err != nil {
		uc.logger.Error("CreateBooking: conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
	if conflict != nil {
		uc.logger.Warn("CreateBooking: media=%d range blocked by booking id=%d", req.MediaID, conflict.ID)
		return nil, &ConflictError{
			BookingID: conflict.ID,
			StartDate: conflict.StartDate,
			EndDate:   conflict.EndDate,
		}
	}

	// 5. Derive lifecycle and payment statuses from the dates
	status := domain.DeriveStatus("", now, req.StartDate, req.EndDate)
	paymentStatus := domain.DerivePaymentStatus(status, req.Amount, req.AmountPaid)

	booking := &domain.Booking{
		MediaID:       req.MediaID,
		CustomerID:    req.CustomerID,
		StartDate:     domain.DateOnly(req.StartDate),
		EndDate:       domain.DateOnly(req.EndDate),
		Status:        status,
		Amount:        req.Amount,
		AmountPaid:    req.AmountPaid,
		PaymentStatus: paymentStatus,
		Notes:         req.Notes,
	}

	// 6. Commit
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: insert failed: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d status=%s payment=%s",
		created.ID, created.Status, created.PaymentStatus)

	// 7. Post-commit cascade: failures are logged, never surfaced
	uc.cascades.Run(ctx, "CreateBooking", []cascade.Task{
		{Name: "syncCalendar", Run: func(ctx context.Context) error {
			return uc.mediaSync.RefreshCalendar(ctx, created)
		}},
		{Name: "syncMediaStatus", Run: func(ctx context.Context) error {
			return uc.mediaSync.SyncStatus(ctx, created.MediaID)
		}},
		{Name: "reconcileCustomer", Run: func(ctx context.Context) error {
			return uc.ledger.OnBookingCreated(ctx, created.CustomerID, created.AmountPaid)
		}},
	})

	return toResponse(created), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		MediaID:       b.MediaID,
		CustomerID:    b.CustomerID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        string(b.Status),
		Amount:        b.Amount,
		AmountPaid:    b.AmountPaid,
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		Version:       b.Version,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
