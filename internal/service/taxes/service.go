// Package taxes generates and maintains the tax installment schedule of
// tender agreements.
package taxes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
)

var (
	// ErrInternal is returned on repository failures
	ErrInternal = errors.New("taxes: internal error")
)

// Service amortizes agreement fees into periodic installments
type Service struct {
	installmentRepo InstallmentRepository
	logger          Logger
}

// NewService creates a taxes service.
func NewService(installmentRepo InstallmentRepository, logger Logger) *Service {
	return &Service{
		installmentRepo: installmentRepo,
		logger:          logger,
	}
}

// GenerateForAgreement builds and stores the full pending schedule for a
// freshly created agreement, returning the number of installments.
func (s *Service) GenerateForAgreement(ctx context.Context, a *domain.TenderAgreement) (int, error) {
	installments := domain.GenerateInstallments(a)

	if err := s.installmentRepo.BulkCreate(ctx, installments); err != nil {
		s.logger.Error("GenerateForAgreement: bulk insert failed for agreement=%d: %v", a.ID, err)
		return 0, fmt.Errorf("%w: GenerateForAgreement - bulk insert: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateForAgreement: agreement=%d generated %d installments (%s)",
		a.ID, len(installments), a.TaxFrequency)
	return len(installments), nil
}

// RegenerateForAgreement replaces the agreement's pending installments
// with a schedule generated over its current terms. Paid installments
// are immutable and preserved; if they no longer align with the new
// schedule the mismatch is accepted, not reconciled.
//
// The pending wipe and the fresh insert are two sequential writes. When
// the insert fails after a successful wipe the agreement is left without
// pending installments; this is logged loudly and surfaced, but no
// rollback is attempted.
func (s *Service) RegenerateForAgreement(ctx context.Context, a *domain.TenderAgreement) error {
	if err := s.installmentRepo.DeletePendingByAgreement(ctx, a.ID); err != nil {
		s.logger.Error("RegenerateForAgreement: pending wipe failed for agreement=%d: %v", a.ID, err)
		return fmt.Errorf("%w: RegenerateForAgreement - delete pending: %v", ErrInternal, err)
	}

	installments := domain.GenerateInstallments(a)
	if err := s.installmentRepo.BulkCreate(ctx, installments); err != nil {
		s.logger.Error("RegenerateForAgreement: regeneration failed for agreement=%d after pending wipe, schedule is degraded: %v", a.ID, err)
		return fmt.Errorf("%w: RegenerateForAgreement - bulk insert: %v", ErrInternal, err)
	}

	s.logger.Info("RegenerateForAgreement: agreement=%d regenerated %d installments (%s)",
		a.ID, len(installments), a.TaxFrequency)
	return nil
}

// ListForAgreement returns the agreement's installments with the
// read-time overdue derivation applied.
func (s *Service) ListForAgreement(ctx context.Context, agreementID int64, now time.Time) ([]*domain.TaxInstallment, error) {
	installments, err := s.installmentRepo.ListByAgreement(ctx, agreementID)
	if err != nil {
		s.logger.Error("ListForAgreement: listing failed for agreement=%d: %v", agreementID, err)
		return nil, fmt.Errorf("%w: ListForAgreement - repository error: %v", ErrInternal, err)
	}

	for _, inst := range installments {
		inst.Status = domain.DeriveInstallmentStatus(inst.Status, inst.DueDate, now)
	}

	return installments, nil
}
