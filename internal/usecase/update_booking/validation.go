package update_booking

import (
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// validateRequest validates the request payload.
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.Version <= 0 {
		return fmt.Errorf("%w: version is required", ErrInvalidInput)
	}

	if req.Amount != nil && req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if req.AmountPaid != nil && req.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	auto := req.AutoStatus == nil || *req.AutoStatus
	if auto && req.Status != nil {
		return fmt.Errorf("%w: status cannot be set while autoStatus is enabled", ErrInvalidInput)
	}
	if !auto {
		if req.Status == nil {
			return fmt.Errorf("%w: status is required when autoStatus is disabled", ErrInvalidInput)
		}
		if !domain.ValidBookingStatus(domain.BookingStatus(*req.Status)) {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	return nil
}
