package sqlstore

import (
	"context"
)

const getSettings = `
SELECT id, pricing, delivery_window_start, delivery_window_end, updated_by, updated_at
FROM settings
WHERE id = 1`

func (q *Queries) GetSettings(ctx context.Context, db DBTX) (Settings, error) {
	var s Settings
	err := db.QueryRow(ctx, getSettings).Scan(
		&s.ID,
		&s.Pricing,
		&s.DeliveryWindowStart,
		&s.DeliveryWindowEnd,
		&s.UpdatedBy,
		&s.UpdatedAt,
	)
	return s, err
}

const upsertSettings = `
INSERT INTO settings (id, pricing, delivery_window_start, delivery_window_end, updated_by, updated_at)
VALUES (1, $1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET pricing = EXCLUDED.pricing,
    delivery_window_start = EXCLUDED.delivery_window_start,
    delivery_window_end = EXCLUDED.delivery_window_end,
    updated_by = EXCLUDED.updated_by,
    updated_at = EXCLUDED.updated_at`

type UpsertSettingsParams = Settings

func (q *Queries) UpsertSettings(ctx context.Context, db DBTX, arg UpsertSettingsParams) error {
	_, err := db.Exec(ctx, upsertSettings,
		arg.Pricing,
		arg.DeliveryWindowStart,
		arg.DeliveryWindowEnd,
		arg.UpdatedBy,
		arg.UpdatedAt,
	)
	return err
}
