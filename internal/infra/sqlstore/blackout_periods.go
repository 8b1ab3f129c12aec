package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const blackoutColumns = `id, start_date, end_date, type, start_time, end_time, reason, created_by, created_at, updated_at`

func scanBlackout(row interface{ Scan(dest ...any) error }) (BlackoutPeriods, error) {
	var b BlackoutPeriods
	err := row.Scan(
		&b.ID,
		&b.StartDate,
		&b.EndDate,
		&b.Type,
		&b.StartTime,
		&b.EndTime,
		&b.Reason,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func collectBlackouts(rows pgx.Rows) ([]BlackoutPeriods, error) {
	defer rows.Close()
	var items []BlackoutPeriods
	for rows.Next() {
		b, err := scanBlackout(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const createBlackoutPeriod = `
INSERT INTO blackout_periods (` + blackoutColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateBlackoutPeriodParams = BlackoutPeriods

func (q *Queries) CreateBlackoutPeriod(ctx context.Context, db DBTX, arg CreateBlackoutPeriodParams) error {
	_, err := db.Exec(ctx, createBlackoutPeriod,
		arg.ID,
		arg.StartDate,
		arg.EndDate,
		arg.Type,
		arg.StartTime,
		arg.EndTime,
		arg.Reason,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBlackoutPeriod = `
UPDATE blackout_periods
SET start_date = $2, end_date = $3, type = $4, start_time = $5, end_time = $6, reason = $7, updated_at = $8
WHERE id = $1`

type UpdateBlackoutPeriodParams struct {
	ID        uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Type      string
	StartTime pgtype.Text
	EndTime   pgtype.Text
	Reason    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateBlackoutPeriod(ctx context.Context, db DBTX, arg UpdateBlackoutPeriodParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBlackoutPeriod,
		arg.ID,
		arg.StartDate,
		arg.EndDate,
		arg.Type,
		arg.StartTime,
		arg.EndTime,
		arg.Reason,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBlackoutPeriod = `DELETE FROM blackout_periods WHERE id = $1`

func (q *Queries) DeleteBlackoutPeriod(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBlackoutPeriod, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBlackoutPeriodByID = `SELECT ` + blackoutColumns + ` FROM blackout_periods WHERE id = $1`

func (q *Queries) GetBlackoutPeriodByID(ctx context.Context, db DBTX, id uuid.UUID) (BlackoutPeriods, error) {
	return scanBlackout(db.QueryRow(ctx, getBlackoutPeriodByID, id))
}

// A period with no end date covers only its start date.
const listBlackoutPeriodsCovering = `
SELECT ` + blackoutColumns + `
FROM blackout_periods
WHERE start_date <= $2
  AND COALESCE(end_date, start_date) >= $1
ORDER BY start_date`

func (q *Queries) ListBlackoutPeriodsCovering(ctx context.Context, db DBTX, from, to pgtype.Date) ([]BlackoutPeriods, error) {
	rows, err := db.Query(ctx, listBlackoutPeriodsCovering, from, to)
	if err != nil {
		return nil, err
	}
	return collectBlackouts(rows)
}

const listBlackoutPeriods = `
SELECT ` + blackoutColumns + `
FROM blackout_periods
WHERE ($1::date IS NULL OR COALESCE(end_date, start_date) >= $1)
  AND ($2::date IS NULL OR start_date <= $2)
ORDER BY start_date, id`

func (q *Queries) ListBlackoutPeriods(ctx context.Context, db DBTX, from, to pgtype.Date) ([]BlackoutPeriods, error) {
	rows, err := db.Query(ctx, listBlackoutPeriods, from, to)
	if err != nil {
		return nil, err
	}
	return collectBlackouts(rows)
}
