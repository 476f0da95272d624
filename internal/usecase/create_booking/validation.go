package create_booking

import (
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// validateRequest validates the request payload.
func validateRequest(req *Request) error {
	if req.MediaID <= 0 {
		return fmt.Errorf("%w: mediaId must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if domain.DateOnly(req.StartDate).After(domain.DateOnly(req.EndDate)) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if req.AmountPaid.IsNegative() {
		return fmt.Errorf("%w: amountPaid must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
