package repository

import (
	"context"
	"time"

	"party-rental/internal/infra"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/pgconv"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateNotificationJobParams) error
	LeaseNotificationJob(ctx context.Context, db sqlstore.DBTX, id uuid.UUID, until pgtype.Timestamptz) error
	UpdateNotificationJobStatus(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlstore.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlstore.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlstore.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.NotificationStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) Lease(ctx context.Context, jobID uuid.UUID, until time.Time) error {
	if err := r.queries.LeaseNotificationJob(ctx, r.db, jobID, pgconv.TimeToPgtype(until)); err != nil {
		return infra.WrapRepoErr("failed to lease notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, job shared.NotificationJob) error {
	params := sqlstore.UpdateNotificationJobStatusParams{
		ID:        job.ID,
		Status:    shared.NotificationStatusSent,
		Attempts:  int32(job.Attempts + 1),
		LastError: pgtype.Text{Valid: false},
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}

// MarkFailed requeues the job at retryAt, or buries it when retryAt is nil.
func (r *NotificationRepository) MarkFailed(ctx context.Context, job shared.NotificationJob, lastError string, retryAt *time.Time) error {
	params := sqlstore.UpdateNotificationJobStatusParams{
		ID:        job.ID,
		Status:    shared.NotificationStatusDead,
		Attempts:  int32(job.Attempts + 1),
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
	}
	if retryAt != nil {
		params.Status = shared.NotificationStatusQueued
		params.RunAt = pgconv.TimeToPgtype(*retryAt)
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
