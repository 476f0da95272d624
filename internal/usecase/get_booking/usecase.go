package get_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
)

// Response booking detail. Status carries the date-derived value as of
// the request, which may be ahead of the stored one; ReferenceID is the
// positional display identifier.
type Response struct {
	ID            int64
	ReferenceID   string
	MediaID       int64
	CustomerID    int64
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	Amount        decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus string
	Notes         *string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UseCase fetches one booking with its display reference ID.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the booking detail.
//
// Reference IDs are positional over the whole booking population, so
// the detail view loads the full list to rank this booking. Acceptable
// at the catalog sizes this service manages.
func (uc *UseCase) Execute(ctx context.Context, id int64) (*Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	if booking.Deleted {
		return nil, ErrBookingNotFound
	}

	all, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetBooking: failed to rank bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to rank bookings: %v", ErrInternal, err)
	}
	refIDs := domain.AssignReferenceIDs(all)

	now := uc.timeProvider.Now()
	status := domain.DeriveStatus(booking.Status, now, booking.StartDate, booking.EndDate)
	paymentStatus := domain.DerivePaymentStatus(status, booking.Amount, booking.AmountPaid)

	return &Response{
		ID:            booking.ID,
		ReferenceID:   refIDs[booking.ID],
		MediaID:       booking.MediaID,
		CustomerID:    booking.CustomerID,
		StartDate:     booking.StartDate,
		EndDate:       booking.EndDate,
		Status:        string(status),
		Amount:        booking.Amount,
		AmountPaid:    booking.AmountPaid,
		PaymentStatus: string(paymentStatus),
		Notes:         booking.Notes,
		Version:       booking.Version,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}, nil
}
