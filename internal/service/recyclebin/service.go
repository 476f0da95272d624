// Package recyclebin aggregates soft-deleted records of every entity
// type into a uniform projection, restores or permanently deletes them,
// and hard-purges tombstones past the retention window on a schedule.
package recyclebin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	agreementRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/agreement"
	bookingRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/customer"
	installmentRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/installment"
	mediaRepo "github.com/skyreach/OOH-BookingService/internal/infra/storage/media"
)

// Service manages the cross-entity recycle bin
type Service struct {
	bookings     BookingRepository
	media        MediaRepository
	customers    CustomerRepository
	agreements   AgreementRepository
	installments InstallmentRepository
	logger       Logger
}

// NewService creates a recycle bin service.
func NewService(
	bookings BookingRepository,
	media MediaRepository,
	customers CustomerRepository,
	agreements AgreementRepository,
	installments InstallmentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookings:     bookings,
		media:        media,
		customers:    customers,
		agreements:   agreements,
		installments: installments,
		logger:       logger,
	}
}

// ListDeleted projects every soft-deleted record into a uniform entry,
// newest deletion first. Booking labels carry the positional reference
// ID, which is computed over the full booking population so sequence
// numbers stay stable regardless of what is deleted.
func (s *Service) ListDeleted(ctx context.Context) ([]domain.RecycleBinEntry, error) {
	entries := make([]domain.RecycleBinEntry, 0)

	allBookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - bookings: %v", ErrInternal, err)
	}
	refIDs := domain.AssignReferenceIDs(allBookings)
	for _, b := range allBookings {
		if !b.Deleted || b.DeletedAt == nil {
			continue
		}
		entries = append(entries, domain.RecycleBinEntry{
			EntityType: domain.EntityBooking,
			EntityID:   b.ID,
			Label:      refIDs[b.ID],
			Detail: fmt.Sprintf("media #%d, %s to %s",
				b.MediaID, b.StartDate.Format(domain.DateFormat), b.EndDate.Format(domain.DateFormat)),
			DeletedAt: *b.DeletedAt,
		})
	}

	units, err := s.media.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - media units: %v", ErrInternal, err)
	}
	for _, m := range units {
		if m.DeletedAt == nil {
			continue
		}
		entries = append(entries, domain.RecycleBinEntry{
			EntityType: domain.EntityMediaUnit,
			EntityID:   m.ID,
			Label:      m.Code,
			Detail:     fmt.Sprintf("%s, %s, %s", m.Name, m.City, m.State),
			DeletedAt:  *m.DeletedAt,
		})
	}

	customers, err := s.customers.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - customers: %v", ErrInternal, err)
	}
	for _, c := range customers {
		if c.DeletedAt == nil {
			continue
		}
		detail := ""
		if c.Email != nil {
			detail = *c.Email
		} else if c.Phone != nil {
			detail = *c.Phone
		}
		entries = append(entries, domain.RecycleBinEntry{
			EntityType: domain.EntityCustomer,
			EntityID:   c.ID,
			Label:      c.Name,
			Detail:     detail,
			DeletedAt:  *c.DeletedAt,
		})
	}

	agreements, err := s.agreements.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - agreements: %v", ErrInternal, err)
	}
	for _, a := range agreements {
		if a.DeletedAt == nil {
			continue
		}
		entries = append(entries, domain.RecycleBinEntry{
			EntityType: domain.EntityAgreement,
			EntityID:   a.ID,
			Label:      a.Name,
			Detail: fmt.Sprintf("%s, %s to %s",
				a.Authority, a.StartDate.Format(domain.DateFormat), a.EndDate.Format(domain.DateFormat)),
			DeletedAt: *a.DeletedAt,
		})
	}

	installments, err := s.installments.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - installments: %v", ErrInternal, err)
	}
	for _, inst := range installments {
		if inst.DeletedAt == nil {
			continue
		}
		entries = append(entries, domain.RecycleBinEntry{
			EntityType: domain.EntityInstallment,
			EntityID:   inst.ID,
			Label:      fmt.Sprintf("Tax installment due %s", inst.DueDate.Format(domain.DateFormat)),
			Detail:     fmt.Sprintf("agreement #%d, amount %s", inst.AgreementID, inst.Amount.StringFixed(2)),
			DeletedAt:  *inst.DeletedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DeletedAt.After(entries[j].DeletedAt)
	})

	return entries, nil
}

// Restore clears the tombstone of the target record. It does not
// re-derive dependent state: restoring a booking does not re-run the
// media synchronizer, a status-affecting edit does.
func (s *Service) Restore(ctx context.Context, entityType domain.EntityType, id int64) error {
	var err error
	switch entityType {
	case domain.EntityBooking:
		err = s.bookings.Restore(ctx, id)
	case domain.EntityMediaUnit:
		err = s.media.Restore(ctx, id)
	case domain.EntityCustomer:
		err = s.customers.Restore(ctx, id)
	case domain.EntityAgreement:
		err = s.agreements.Restore(ctx, id)
	case domain.EntityInstallment:
		err = s.installments.Restore(ctx, id)
	default:
		return ErrUnknownEntityType
	}

	if err != nil {
		if isNotFound(err) {
			return ErrEntryNotFound
		}
		s.logger.Error("Restore: failed for %s id=%d: %v", entityType, id, err)
		return fmt.Errorf("%w: Restore - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Restore: restored %s id=%d", entityType, id)
	return nil
}

// PermanentDelete irreversibly removes the target record.
func (s *Service) PermanentDelete(ctx context.Context, entityType domain.EntityType, id int64) error {
	var err error
	switch entityType {
	case domain.EntityBooking:
		err = s.bookings.HardDelete(ctx, id)
	case domain.EntityMediaUnit:
		err = s.media.HardDelete(ctx, id)
	case domain.EntityCustomer:
		err = s.customers.HardDelete(ctx, id)
	case domain.EntityAgreement:
		err = s.agreements.HardDelete(ctx, id)
	case domain.EntityInstallment:
		err = s.installments.HardDelete(ctx, id)
	default:
		return ErrUnknownEntityType
	}

	if err != nil {
		s.logger.Error("PermanentDelete: failed for %s id=%d: %v", entityType, id, err)
		return fmt.Errorf("%w: PermanentDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PermanentDelete: removed %s id=%d", entityType, id)
	return nil
}

// Wipe permanently removes every soft-deleted record of every type.
func (s *Service) Wipe(ctx context.Context) error {
	entries, err := s.ListDeleted(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := s.PermanentDelete(ctx, entry.EntityType, entry.EntityID); err != nil {
			return err
		}
	}

	s.logger.Info("Wipe: permanently removed %d entries", len(entries))
	return nil
}

// PurgeExpired hard-deletes agreements and installments whose tombstone
// is at least the retention window old. Deleting an agreement cascades
// to all its installments regardless of their own deleted flags or age.
// The purge is idempotent and safe to run concurrently with itself.
func (s *Service) PurgeExpired(ctx context.Context, now time.Time) error {
	cutoff := now.AddDate(0, 0, -domain.RecycleBinRetentionDays)

	purgedInstallments, err := s.installments.PurgeExpired(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeExpired: installment purge failed: %v", err)
		return fmt.Errorf("%w: PurgeExpired - installments: %v", ErrInternal, err)
	}

	agreements, err := s.agreements.ListPurgeable(ctx, cutoff)
	if err != nil {
		s.logger.Error("PurgeExpired: purgeable agreement query failed: %v", err)
		return fmt.Errorf("%w: PurgeExpired - list agreements: %v", ErrInternal, err)
	}

	for _, a := range agreements {
		if err := s.agreements.HardDelete(ctx, a.ID); err != nil {
			s.logger.Error("PurgeExpired: agreement id=%d purge failed: %v", a.ID, err)
			return fmt.Errorf("%w: PurgeExpired - delete agreement: %v", ErrInternal, err)
		}
	}

	if purgedInstallments > 0 || len(agreements) > 0 {
		s.logger.Info("PurgeExpired: purged %d installments and %d agreements older than %d days",
			purgedInstallments, len(agreements), domain.RecycleBinRetentionDays)
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, bookingRepo.ErrBookingNotFound) ||
		errors.Is(err, mediaRepo.ErrMediaNotFound) ||
		errors.Is(err, customerRepo.ErrCustomerNotFound) ||
		errors.Is(err, agreementRepo.ErrAgreementNotFound) ||
		errors.Is(err, installmentRepo.ErrInstallmentNotFound)
}
