package list_bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// Request list filter. Nil fields are not applied.
type Request struct {
	MediaID    *int64
	CustomerID *int64
	Status     *string
}

// Item one booking row with its display reference ID and the
// date-derived statuses as of the request.
type Item struct {
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

// Response booking list
type Response struct {
	Bookings []Item
}

// UseCase lists bookings with optional filters.
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

// Execute returns non-deleted bookings matching the filter, ordered by
// start date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var statusFilter *domain.BookingStatus
	if req.Status != nil {
		s := domain.BookingStatus(*req.Status)
		if !domain.ValidBookingStatus(s) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		statusFilter = &s
	}

	filter := domain.BookingFilter{
		MediaID:    req.MediaID,
		CustomerID: req.CustomerID,
		Status:     statusFilter,
	}

	bookings, err := uc.bookingRepo.ListByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ListBookings: query failed: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// Rank over the full population so reference IDs do not shift with
	// the filter.
	all, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("ListBookings: failed to rank bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to rank bookings: %v", ErrInternal, err)
	}
	refIDs := domain.AssignReferenceIDs(all)

	now := uc.timeProvider.Now()
	items := make([]Item, 0, len(bookings))
	for _, b := range bookings {
		status := domain.DeriveStatus(b.Status, now, b.StartDate, b.EndDate)
		items = append(items, Item{
			ID:            b.ID,
			ReferenceID:   refIDs[b.ID],
			MediaID:       b.MediaID,
			CustomerID:    b.CustomerID,
			StartDate:     b.StartDate,
			EndDate:       b.EndDate,
			Status:        string(status),
			Amount:        b.Amount,
			AmountPaid:    b.AmountPaid,
			PaymentStatus: string(domain.DerivePaymentStatus(status, b.Amount, b.AmountPaid)),
			Notes:         b.Notes,
			Version:       b.Version,
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		})
	}

	return &Response{Bookings: items}, nil
}
