package create_agreement

import (
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// validateRequest validates the request payload.
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.StartDate).Before(domain.DateOnly(req.EndDate)) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}

	if req.LicenseFee.IsNegative() {
		return fmt.Errorf("%w: licenseFee must not be negative", ErrInvalidInput)
	}

	if !domain.ValidTaxFrequency(domain.TaxFrequency(req.TaxFrequency)) {
		return fmt.Errorf("%w: unknown taxFrequency %q", ErrInvalidInput, req.TaxFrequency)
	}

	return nil
}
