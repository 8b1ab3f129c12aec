package readstore

import (
	"context"
	"time"

	"party-rental/internal/infra"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/pgconv"
	"party-rental/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadQueries interface {
	ListDueNotificationJobs(ctx context.Context, db sqlstore.DBTX, now pgtype.Timestamptz, limit int32) ([]sqlstore.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlstore.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlstore.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// ListDue claims queued jobs whose run time has passed. Call it inside a
// transaction so the row locks hold until the jobs are marked.
func (s *NotificationReadStore) ListDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := s.queries.ListDueNotificationJobs(ctx, s.db, pgconv.TimeToPgtype(now), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get due notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			RunAt:    row.RunAt.Time,
			Attempts: int(row.Attempts),
		}
	}

	return jobs, nil
}
