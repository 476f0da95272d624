package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/pkg/dbmetrics"
	"github.com/skyreach/OOH-BookingService/pkg/psqlbuilder"
)

// DBExecutor query surface shared with the dbmetrics wrapper
type DBExecutor = dbmetrics.DBExecutor

var mediaColumns = []string{
	"id",
	"code",
	"name",
	"state",
	"district",
	"city",
	"media_type",
	"width_ft",
	"height_ft",
	"status",
	"deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

const uniqueViolation = "23505"

// Repository persistence for media units and their booking calendar
type Repository struct {
	db DBExecutor
}

// NewRepository creates a media repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new media unit.
func (r *Repository) Create(ctx context.Context, m *domain.MediaUnit) (*domain.MediaUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if m.Status == "" {
		m.Status = domain.MediaAvailable
	}

	query, args, err := psqlbuilder.Insert("media_units").
		Columns("code", "name", "state", "district", "city", "media_type", "width_ft", "height_ft", "status").
		Values(m.Code, m.Name, m.State, m.District, m.City, m.MediaType, m.WidthFt, m.HeightFt, m.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// GetByID fetches the media unit, soft-deleted ones included.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MediaUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mediaColumns...).
		From("media_units").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.MediaUnit
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.Code, &m.Name, &m.State, &m.District, &m.City,
		&m.MediaType, &m.WidthFt, &m.HeightFt, &m.Status,
		&m.Deleted, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan media unit: %v", ErrScanRow, err)
	}

	return &m, nil
}

// UpdateStatus writes the unit's availability status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MediaStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("media_units").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrMediaNotFound
	}

	return nil
}

// SoftDelete tombstones the media unit.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true, "SoftDelete")
}

// Restore clears the tombstone of a soft-deleted media unit.
func (r *Repository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false, "Restore")
}

func (r *Repository) setDeleted(ctx context.Context, id int64, deleted bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("media_units").
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
		return ErrMediaNotFound
	}

	return nil
}

// HardDelete removes the media unit row permanently. Recycle bin only.
func (r *Repository) HardDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("media_units").
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

// ListDeleted returns soft-deleted media units for the recycle bin.
func (r *Repository) ListDeleted(ctx context.Context) ([]*domain.MediaUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mediaColumns...).
		From("media_units").
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

	units := make([]*domain.MediaUnit, 0)
	for rows.Next() {
		var m domain.MediaUnit
		err := rows.Scan(
			&m.ID, &m.Code, &m.Name, &m.State, &m.District, &m.City,
			&m.MediaType, &m.WidthFt, &m.HeightFt, &m.Status,
			&m.Deleted, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDeleted - scan row: %v", ErrScanRow, err)
		}
		units = append(units, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDeleted - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}

// ReplaceCalendarEntry removes the booking's old interval from the
// media calendar and inserts the new one in a single upsert.
func (r *Repository) ReplaceCalendarEntry(ctx context.Context, entry domain.CalendarEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("media_calendar").
		Columns("booking_id", "media_id", "start_date", "end_date").
		Values(entry.BookingID, entry.MediaID, entry.StartDate, entry.EndDate).
		Suffix("ON CONFLICT (booking_id) DO UPDATE SET media_id = EXCLUDED.media_id, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceCalendarEntry - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceCalendarEntry - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveCalendarEntry drops the booking's interval from the calendar.
// Removing an absent entry is a no-op.
func (r *Repository) RemoveCalendarEntry(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("media_calendar").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveCalendarEntry - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveCalendarEntry - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListCalendar returns the unit's occupied intervals ordered by start date.
func (r *Repository) ListCalendar(ctx context.Context, mediaID int64) ([]domain.CalendarEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_id", "media_id", "start_date", "end_date").
		From("media_calendar").
		Where(squirrel.Eq{"media_id": mediaID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCalendar - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCalendar - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.CalendarEntry, 0)
	for rows.Next() {
		var e domain.CalendarEntry
		if err := rows.Scan(&e.BookingID, &e.MediaID, &e.StartDate, &e.EndDate); err != nil {
			return nil, fmt.Errorf("%w: ListCalendar - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCalendar - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
