package create_agreement

import (
	"context"
	"fmt"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

// UseCase creates a tender agreement and generates its installment
// schedule. Generation runs synchronously: an agreement without its
// schedule is incomplete, so a generation failure surfaces to the
// caller (the agreement row itself stays committed).
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

// Execute creates the agreement.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAgreement: name=%q authority=%q frequency=%s", req.Name, req.Authority, req.TaxFrequency)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAgreement: validation failed: %v", err)
		return nil, err
	}

	agreement := &domain.TenderAgreement{
		Name:         req.Name,
		Authority:    req.Authority,
		StartDate:    domain.DateOnly(req.StartDate),
		EndDate:      domain.DateOnly(req.EndDate),
		LicenseFee:   req.LicenseFee,
		TaxFrequency: domain.TaxFrequency(req.TaxFrequency),
	}

	created, err := uc.agreementRepo.Create(ctx, agreement)
	if err != nil {
		uc.logger.Error("CreateAgreement: insert failed: %v", err)
		return nil, fmt.Errorf("%w: failed to create agreement: %v", ErrInternal, err)
	}

	installmentCount, err := uc.taxes.GenerateForAgreement(ctx, created)
	if err != nil {
		uc.logger.Error("CreateAgreement: schedule generation failed for id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to generate installments: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAgreement: created agreement id=%d with %d installments", created.ID, installmentCount)

	return &Response{
		ID:               created.ID,
		Name:             created.Name,
		Authority:        created.Authority,
		StartDate:        created.StartDate,
		EndDate:          created.EndDate,
		LicenseFee:       created.LicenseFee,
		TaxFrequency:     string(created.TaxFrequency),
		Status:           string(domain.DeriveAgreementStatus(created.EndDate, uc.timeProvider.Now())),
		InstallmentCount: installmentCount,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}
