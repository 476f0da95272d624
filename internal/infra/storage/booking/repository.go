package booking

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

var bookingColumns = []string{
	"id",
	"media_id",
	"customer_id",
	"start_date",
	"end_date",
	"status",
	"amount",
	"amount_paid",
	"payment_status",
	"notes",
	"version",
	"deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository persistence for bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and returns it with generated fields set.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"media_id",
			"customer_id",
			"start_date",
			"end_date",
			"status",
			"amount",
			"amount_paid",
			"payment_status",
			"notes",
		).
		Values(
			b.MediaID,
			b.CustomerID,
			b.StartDate,
			b.EndDate,
			b.Status,
			b.Amount,
			b.AmountPaid,
			b.PaymentStatus,
			b.Notes,
		).
		Suffix("RETURNING id, version, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Version,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID fetches the full booking record, soft-deleted ones included.
// Callers decide whether a tombstone is visible for their operation.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// FindOverlapping returns one booking of the media unit whose closed date
// interval overlaps [start, end], or nil when none does. Candidates are
// non-deleted, non-cancelled bookings; excludeID removes the booking
// being edited from consideration. Touching endpoints count as overlap.
func (r *Repository) FindOverlapping(ctx context.Context, mediaID int64, start, end time.Time, excludeID *int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"media_id": mediaID, "deleted": false}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.LtOrEq{"start_date": domain.DateOnly(end)}).
		Where(squirrel.GtOrEq{"end_date": domain.DateOnly(start)}).
		OrderBy("start_date ASC", "id ASC").
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// HasActiveForMedia reports whether any non-deleted booking of the media
// unit currently has status active.
func (r *Repository) HasActiveForMedia(ctx context.Context, mediaID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"media_id": mediaID,
			"deleted":  false,
			"status":   domain.StatusActive,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveForMedia - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveForMedia - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// UpdateWithVersion writes the booking's mutable fields conditioned on
// the version counter being unchanged since the caller read the record.
// On a lost race it returns ErrVersionConflict so the caller can surface
// a distinct reload-and-retry error.
func (r *Repository) UpdateWithVersion(ctx context.Context, b *domain.Booking, expectedVersion int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_date", b.StartDate).
		Set("end_date", b.EndDate).
		Set("status", b.Status).
		Set("amount", b.Amount).
		Set("amount_paid", b.AmountPaid).
		Set("payment_status", b.PaymentStatus).
		Set("notes", b.Notes).
		Set("version", expectedVersion+1).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":      b.ID,
			"version": expectedVersion,
			"deleted": false,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWithVersion - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Distinguish a stale version from a missing record.
		if _, getErr := r.GetByID(ctx, b.ID); getErr != nil {
			return ErrBookingNotFound
		}
		return ErrVersionConflict
	}

	b.Version = expectedVersion + 1
	return nil
}

// SoftDelete tombstones the booking. The record stays queryable for the
// recycle bin until a permanent purge.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Restore clears the tombstone of a soft-deleted booking.
func (r *Repository) Restore(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("deleted", false).
		Set("deleted_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Restore - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Restore - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Restore - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// HardDelete removes the booking row permanently. Recycle bin only.
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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

// ListByFilter returns bookings matching the filter, newest start first.
func (r *Repository) ListByFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("start_date DESC", "id DESC")

	if filter.MediaID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"media_id": *filter.MediaID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeDeleted {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"deleted": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListAll returns every booking including tombstones. Used to compute
// positional reference IDs, which need the full population.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.ListByFilter(ctx, domain.BookingFilter{IncludeDeleted: true})
}

// ListDeleted returns soft-deleted bookings for the recycle bin.
func (r *Repository) ListDeleted(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"deleted": true}).
		OrderBy("deleted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingInto(b *domain.Booking, row rowScanner) error {
	return row.Scan(
		&b.ID,
		&b.MediaID,
		&b.CustomerID,
		&b.StartDate,
		&b.EndDate,
		&b.Status,
		&b.Amount,
		&b.AmountPaid,
		&b.PaymentStatus,
		&b.Notes,
		&b.Version,
		&b.Deleted,
		&b.DeletedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := scanBookingInto(&b, row); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		if err := scanBookingInto(&b, rows); err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
