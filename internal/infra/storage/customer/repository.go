package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/pkg/dbmetrics"
	"github.com/skyreach/OOH-BookingService/pkg/psqlbuilder"
)

// DBExecutor query surface shared with the dbmetrics wrapper
type DBExecutor = dbmetrics.DBExecutor

var customerColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"total_bookings",
	"total_spent",
	"deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository persistence for customers and their aggregate counters
type Repository struct {
	db DBExecutor
}

// NewRepository creates a customer repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new customer.
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "phone", "email").
		Values(c.Name, c.Phone, c.Email).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID fetches the customer, soft-deleted ones included.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email,
		&c.TotalBookings, &c.TotalSpent,
		&c.Deleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ApplyBookingDelta adjusts the customer's running counters as a single
// atomic in-database increment. Never implemented as read-modify-write:
// concurrent bookings for the same customer must not lose updates.
func (r *Repository) ApplyBookingDelta(ctx context.Context, customerID int64, bookingsDelta int64, spentDelta decimal.Decimal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("total_bookings", squirrel.Expr("total_bookings + ?", bookingsDelta)).
		Set("total_spent", squirrel.Expr("total_spent + ?", spentDelta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyBookingDelta - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyBookingDelta - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyBookingDelta - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// SoftDelete tombstones the customer.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true, "SoftDelete")
}

// Restore clears the tombstone of a soft-deleted customer.
func (r *Repository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false, "Restore")
}

func (r *Repository) setDeleted(ctx context.Context, id int64, deleted bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("customers").
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
		return ErrCustomerNotFound
	}

	return nil
}

// HardDelete removes the customer row permanently. Recycle bin only.
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("customers").
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

// ListDeleted returns soft-deleted customers for the recycle bin.
func (r *Repository) ListDeleted(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email,
			&c.TotalBookings, &c.TotalSpent,
			&c.Deleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDeleted - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}
