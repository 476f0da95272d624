package installment

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

var installmentColumns = []string{
	"id",
	"agreement_id",
	"due_date",
	"amount",
	"status",
	"deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository persistence for tax installments
type Repository struct {
	db DBExecutor
}

// NewRepository creates an installment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkCreate inserts a generated schedule in one statement.
func (r *Repository) BulkCreate(ctx context.Context, installments []domain.TaxInstallment) error {
	if len(installments) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("tax_installments").
		Columns("agreement_id", "due_date", "amount", "status")
	for _, inst := range installments {
		insertBuilder = insertBuilder.Values(inst.AgreementID, inst.DueDate, inst.Amount, inst.Status)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID fetches the installment, soft-deleted ones included.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TaxInstallment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(installmentColumns...).
		From("tax_installments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	inst, err := scanInstallment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstallmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan installment: %v", ErrScanRow, err)
	}

	return inst, nil
}

// ListByAgreement returns the agreement's non-deleted installments in due
// date order.
func (r *Repository) ListByAgreement(ctx context.Context, agreementID int64) ([]*domain.TaxInstallment, error) {
	query, args, err := psqlbuilder.Select(installmentColumns...).
		From("tax_installments").
		Where(squirrel.Eq{"agreement_id": agreementID, "deleted": false}).
		OrderBy("due_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAgreement - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryInstallments(ctx, query, args, "ListByAgreement")
}

// DeletePendingByAgreement hard-deletes the agreement's pending
// installments ahead of regeneration. Paid installments are immutable
// and never touched.
func (r *Repository) DeletePendingByAgreement(ctx context.Context, agreementID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tax_installments").
		Where(squirrel.Eq{
			"agreement_id": agreementID,
			"status":       domain.InstallmentPending,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeletePendingByAgreement - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeletePendingByAgreement - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkPaid records the installment as paid.
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tax_installments").
		Set("status", domain.InstallmentPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrInstallmentNotFound
	}

	return nil
}

// SoftDelete tombstones the installment.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true, "SoftDelete")
}

// Restore clears the tombstone of a soft-deleted installment.
func (r *Repository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false, "Restore")
}

func (r *Repository) setDeleted(ctx context.Context, id int64, deleted bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("tax_installments").
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
		return ErrInstallmentNotFound
	}

	return nil
}

// HardDelete removes the installment row permanently. Recycle bin only.
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tax_installments").
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

// ListDeleted returns soft-deleted installments for the recycle bin.
func (r *Repository) ListDeleted(ctx context.Context) ([]*domain.TaxInstallment, error) {
	query, args, err := psqlbuilder.Select(installmentColumns...).
		From("tax_installments").
		Where(squirrel.Eq{"deleted": true}).
		OrderBy("deleted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryInstallments(ctx, query, args, "ListDeleted")
}

// PurgeExpired hard-deletes installments whose tombstone is at or past
// the retention cutoff. Idempotent: re-running over an already purged
// set affects zero rows.
func (r *Repository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tax_installments").
		Where(squirrel.Eq{"deleted": true}).
		Where(squirrel.LtOrEq{"deleted_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - execute delete: %v", ErrExecQuery, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: PurgeExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return purged, nil
}

func (r *Repository) queryInstallments(ctx context.Context, query string, args []interface{}, op string) ([]*domain.TaxInstallment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	installments := make([]*domain.TaxInstallment, 0)
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return installments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInstallment(row rowScanner) (*domain.TaxInstallment, error) {
	var inst domain.TaxInstallment
	err := row.Scan(
		&inst.ID, &inst.AgreementID, &inst.DueDate, &inst.Amount, &inst.Status,
		&inst.Deleted, &inst.DeletedAt, &inst.CreatedAt, &inst.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
