package update_agreement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	agreementRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/agreement"
)

// Request update agreement request. Nil pointer fields stay unchanged.
type Request struct {
	ID int64

	Name         *string
	Authority    *string
	StartDate    *time.Time
	EndDate      *time.Time
	LicenseFee   *decimal.Decimal
	TaxFrequency *string
}

// Response updated agreement
type Response struct {
	ID           int64
	Name         string
	Authority    string
	StartDate    time.Time
	EndDate      time.Time
	LicenseFee   decimal.Decimal
	TaxFrequency string
	Status       string
	Regenerated  bool // true when the installment schedule was rebuilt
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UseCase edits a tender agreement. When the financial terms (dates,
// fee, frequency) change, pending installments are regenerated over the
// new terms; paid installments are never touched. Cosmetic edits (name,
// authority) leave the schedule alone.
type UseCase struct {
	agreementRepo AgreementRepository
	taxes         TaxScheduler
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the use case.
func NewUseCase(agreementRepo AgreementRepository, taxes TaxScheduler, logger Logger) *UseCase {
	return &UseCase{
		agreementRepo: agreementRepo,
		taxes:         taxes,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute applies the edit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAgreement: id=%d", req.ID)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: agreementId must be positive", ErrInvalidInput)
	}

	current, err := uc.agreementRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, agreementRepo.ErrAgreementNotFound) {
			uc.logger.Warn("UpdateAgreement: agreement id=%d not found", req.ID)
			return nil, ErrAgreementNotFound
		}
		uc.logger.Error("UpdateAgreement: failed to get agreement id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get agreement: %v", ErrInternal, err)
	}
	if current.Deleted {
		return nil, ErrAgreementNotFound
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Authority != nil {
		updated.Authority = *req.Authority
	}
	if req.StartDate != nil {
		updated.StartDate = domain.DateOnly(*req.StartDate)
	}
	if req.EndDate != nil {
		updated.EndDate = domain.DateOnly(*req.EndDate)
	}
	if req.LicenseFee != nil {
		updated.LicenseFee = *req.LicenseFee
	}
	if req.TaxFrequency != nil {
		updated.TaxFrequency = domain.TaxFrequency(*req.TaxFrequency)
	}

	if err := validateMerged(&updated); err != nil {
		uc.logger.Warn("UpdateAgreement: validation failed: %v", err)
		return nil, err
	}

	termsChanged := !current.TermsEqual(updated.StartDate, updated.EndDate, updated.LicenseFee, updated.TaxFrequency)

	if err := uc.agreementRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, agreementRepo.ErrAgreementNotFound) {
			return nil, ErrAgreementNotFound
		}
		uc.logger.Error("UpdateAgreement: commit failed for id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update agreement: %v", ErrInternal, err)
	}

	if termsChanged {
		if err := uc.taxes.RegenerateForAgreement(ctx, &updated); err != nil {
			uc.logger.Error("UpdateAgreement: schedule regeneration failed for id=%d: %v", req.ID, err)
			return nil, fmt.Errorf("%w: failed to regenerate installments: %v", ErrInternal, err)
		}
		uc.logger.Info("UpdateAgreement: id=%d terms changed, schedule regenerated", req.ID)
	}

	return &Response{
		ID:           updated.ID,
		Name:         updated.Name,
		Authority:    updated.Authority,
		StartDate:    updated.StartDate,
		EndDate:      updated.EndDate,
		LicenseFee:   updated.LicenseFee,
		TaxFrequency: string(updated.TaxFrequency),
		Status:       string(domain.DeriveAgreementStatus(updated.EndDate, uc.timeProvider.Now())),
		Regenerated:  termsChanged,
		CreatedAt:    updated.CreatedAt,
		UpdatedAt:    updated.UpdatedAt,
	}, nil
}

// validateMerged checks the agreement after the edit has been applied,
// so partial updates are validated against the resulting state.
func validateMerged(a *domain.TenderAgreement) error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(a.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if !domain.DateOnly(a.StartDate).Before(domain.DateOnly(a.EndDate)) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}
	if a.LicenseFee.IsNegative() {
		return fmt.Errorf("%w: licenseFee must not be negative", ErrInvalidInput)
	}
	if !domain.ValidTaxFrequency(a.TaxFrequency) {
		return fmt.Errorf("%w: unknown taxFrequency %q", ErrInvalidInput, a.TaxFrequency)
	}
	return nil
}
