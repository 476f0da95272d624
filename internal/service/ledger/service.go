// Package ledger maintains customer aggregate financial counters.
//
// Counters are adjusted by incremental atomic deltas at each booking
// mutation, never overwritten with recomputed absolute values: two
// concurrent edits to different bookings of the same customer must both
// land.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	customerRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/customer"
)

var (
	// ErrCustomerNotFound is returned when the customer does not exist
	ErrCustomerNotFound = errors.New("ledger: customer not found")

	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("ledger: internal error")
)

// Service reconciles customer totals with booking mutations
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService creates a ledger service.
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// OnBookingCreated counts the new booking and its initial receipts
// (the amount actually paid, not the contract total).
func (s *Service) OnBookingCreated(ctx context.Context, customerID int64, amountPaid decimal.Decimal) error {
	return s.apply(ctx, customerID, 1, amountPaid, "OnBookingCreated")
}

// OnAmountPaidChanged applies the signed receipts delta of an edit.
// A zero delta is a no-op.
func (s *Service) OnAmountPaidChanged(ctx context.Context, customerID int64, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	return s.apply(ctx, customerID, 0, delta, "OnAmountPaidChanged")
}

// OnBookingDeleted removes the soft-deleted booking from the counters.
func (s *Service) OnBookingDeleted(ctx context.Context, customerID int64, amountPaid decimal.Decimal) error {
	return s.apply(ctx, customerID, -1, amountPaid.Neg(), "OnBookingDeleted")
}

func (s *Service) apply(ctx context.Context, customerID, bookingsDelta int64, spentDelta decimal.Decimal, op string) error {
	err := s.customerRepo.ApplyBookingDelta(ctx, customerID, bookingsDelta, spentDelta)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("%s: customer=%d not found", op, customerID)
			return ErrCustomerNotFound
		}
		s.logger.Error("%s: counter update failed for customer=%d: %v", op, customerID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: customer=%d bookings_delta=%d spent_delta=%s", op, customerID, bookingsDelta, spentDelta.String())
	return nil
}
