package get_agreement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	agreementRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/agreement"
)

// Installment one installment row with its read-time status
type Installment struct {
	ID        int64
	DueDate   time.Time
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response agreement detail with derived status and schedule
type Response struct {
	ID           int64
	Name         string
	Authority    string
	StartDate    time.Time
	EndDate      time.Time
	LicenseFee   decimal.Decimal
	TaxFrequency string
	Status       string
	Installments []Installment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UseCase fetches one agreement with its derived status and the
// installment schedule (overdue derived at read time).
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

// Execute returns the agreement detail.
func (uc *UseCase) Execute(ctx context.Context, id int64) (*Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: agreementId must be positive", ErrInvalidInput)
	}

	agreement, err := uc.agreementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, agreementRepo.ErrAgreementNotFound) {
			uc.logger.Warn("GetAgreement: agreement id=%d not found", id)
			return nil, ErrAgreementNotFound
		}
		uc.logger.Error("GetAgreement: failed to get agreement id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get agreement: %v", ErrInternal, err)
	}
	if agreement.Deleted {
		return nil, ErrAgreementNotFound
	}

	now := uc.timeProvider.Now()

	installments, err := uc.taxes.ListForAgreement(ctx, id, now)
	if err != nil {
		uc.logger.Error("GetAgreement: failed to list installments for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to list installments: %v", ErrInternal, err)
	}

	items := make([]Installment, 0, len(installments))
	for _, inst := range installments {
		items = append(items, Installment{
			ID:        inst.ID,
			DueDate:   inst.DueDate,
			Amount:    inst.Amount,
			Status:    string(inst.Status),
			CreatedAt: inst.CreatedAt,
			UpdatedAt: inst.UpdatedAt,
		})
	}

	return &Response{
		ID:           agreement.ID,
		Name:         agreement.Name,
		Authority:    agreement.Authority,
		StartDate:    agreement.StartDate,
		EndDate:      agreement.EndDate,
		LicenseFee:   agreement.LicenseFee,
		TaxFrequency: string(agreement.TaxFrequency),
		Status:       string(domain.DeriveAgreementStatus(agreement.EndDate, now)),
		Installments: items,
		CreatedAt:    agreement.CreatedAt,
		UpdatedAt:    agreement.UpdatedAt,
	}, nil
}
