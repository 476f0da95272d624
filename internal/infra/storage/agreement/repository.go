package agreement

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/pkg/dbmetrics"
	"github.com/skyreach/OOH-BookingService/pkg/psqlbuilder"
)

// DBExecutor query surface shared with the dbmetrics wrapper
type DBExecutor = dbmetrics.DBExecutor

var agreementColumns = []string{
	"id",
	"name",
	"authority",
	"start_date",
	"end_date",
	"license_fee",
	"tax_frequency",
	"deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository persistence for tender agreements
type Repository struct {
	db DBExecutor
}

// NewRepository creates an agreement repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new agreement.
func (r *Repository) Create(ctx context.Context, a *domain.TenderAgreement) (*domain.TenderAgreement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tender_agreements").
		Columns("name", "authority", "start_date", "end_date", "license_fee", "tax_frequency").
		Values(a.Name, a.Authority, a.StartDate, a.EndDate, a.LicenseFee, a.TaxFrequency).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID fetches the agreement, soft-deleted ones included.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TenderAgreement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(agreementColumns...).
		From("tender_agreements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAgreement(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgreementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan agreement: %v", ErrScanRow, err)
	}

	return a, nil
}

// Update writes the agreement's editable fields.
func (r *Repository) Update(ctx context.Context, a *domain.TenderAgreement) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tender_agreements").
		Set("name", a.Name).
		Set("authority", a.Authority).
		Set("start_date", a.StartDate).
		Set("end_date", a.EndDate).
		Set("license_fee", a.LicenseFee).
		Set("tax_frequency", a.TaxFrequency).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID, "deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAgreementNotFound
	}

	return nil
}

// SoftDelete tombstones the agreement.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true, "SoftDelete")
}

// Restore clears the tombstone of a soft-deleted agreement.
func (r *Repository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false, "Restore")
}

func (r *Repository) setDeleted(ctx context.Context, id int64, deleted bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("tender_agreements").
		Set("deleted", deleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": !deleted})

	if deleted {
		updateBuilder = updateBuilder.Set("deleted_at", squirrel.Expr("NOW()"))
	} else {
		updateBuilder = updateBuilder.Set("deleted_at", nil)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAgreementNotFound
	}

	return nil
}

// HardDelete removes the agreement permanently. The schema cascades the
// delete to every tax installment referencing it, regardless of the
// installments' own deleted flags (agreement deletion is authoritative).
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tender_agreements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: HardDelete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: HardDelete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListDeleted returns soft-deleted agreements for the recycle bin.
func (r *Repository) ListDeleted(ctx context.Context) ([]*domain.TenderAgreement, error) {
	query, args, err := psqlbuilder.Select(agreementColumns...).
		From("tender_agreements").
		Where(squirrel.Eq{"deleted": true}).
		OrderBy("deleted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAgreements(ctx, query, args, "ListDeleted")
}

// ListPurgeable returns soft-deleted agreements whose tombstone is at or
// past the retention cutoff.
func (r *Repository) ListPurgeable(ctx context.Context, cutoff time.Time) ([]*domain.TenderAgreement, error) {
	query, args, err := psqlbuilder.Select(agreementColumns...).
		From("tender_agreements").
		Where(squirrel.Eq{"deleted": true}).
		Where(squirrel.LtOrEq{"deleted_at": cutoff}).
		OrderBy("deleted_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPurgeable - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAgreements(ctx, query, args, "ListPurgeable")
}

func (r *Repository) queryAgreements(ctx context.Context, query string, args []interface{}, op string) ([]*domain.TenderAgreement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	agreements := make([]*domain.TenderAgreement, 0)
	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		agreements = append(agreements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return agreements, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAgreement(row rowScanner) (*domain.TenderAgreement, error) {
	var a domain.TenderAgreement
	err := row.Scan(
		&a.ID, &a.Name, &a.Authority,
		&a.StartDate, &a.EndDate, &a.LicenseFee, &a.TaxFrequency,
		&a.Deleted, &a.DeletedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
