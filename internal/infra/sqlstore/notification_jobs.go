package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
		arg.Status,
	)
	return err
}

// Rows stay locked until the claiming transaction ends; the claim then
// leases them so two dispatchers never send the same job.
const listDueNotificationJobs = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListDueNotificationJobs(ctx context.Context, db DBTX, now pgtype.Timestamptz, limit int32) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, listDueNotificationJobs, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJobs
	for rows.Next() {
		var j NotificationJobs
		if err := rows.Scan(
			&j.ID,
			&j.Kind,
			&j.Topic,
			&j.Payload,
			&j.RunAt,
			&j.Attempts,
			&j.Status,
			&j.LastError,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

const leaseNotificationJob = `
UPDATE notification_jobs
SET run_at = $2, updated_at = now()
WHERE id = $1`

func (q *Queries) LeaseNotificationJob(ctx context.Context, db DBTX, id uuid.UUID, until pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, leaseNotificationJob, id, until)
	return err
}

const updateNotificationJobStatus = `
UPDATE notification_jobs
SET status = $2, attempts = $3, last_error = $4, run_at = $5, updated_at = now()
WHERE id = $1`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	Attempts  int32
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus,
		arg.ID,
		arg.Status,
		arg.Attempts,
		arg.LastError,
		arg.RunAt,
	)
	return err
}
