package readstore

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlackoutReadQueries interface {
	GetBlackoutPeriodByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.BlackoutPeriods, error)
	ListBlackoutPeriodsCovering(ctx context.Context, db sqlstore.DBTX, from, to pgtype.Date) ([]sqlstore.BlackoutPeriods, error)
	ListBlackoutPeriods(ctx context.Context, db sqlstore.DBTX, from, to pgtype.Date) ([]sqlstore.BlackoutPeriods, error)
}

type BlackoutReadStore struct {
	queries BlackoutReadQueries
	db      sqlstore.DBTX
}

func NewBlackoutReadStore(queries BlackoutReadQueries, db sqlstore.DBTX) *BlackoutReadStore {
	return &BlackoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlackoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error) {
	row, err := r.queries.GetBlackoutPeriodByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blackout period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blackout period", err)
	}
	b, err := converter.BlackoutFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode blackout period", err)
	}
	return b, nil
}

// ListCovering returns periods that cover at least one day of [from, to].
func (r *BlackoutReadStore) ListCovering(ctx context.Context, from, to calendar.Date) ([]*availability.BlackoutPeriod, error) {
	rows, err := r.queries.ListBlackoutPeriodsCovering(ctx, r.db, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackout periods", err)
	}
	return r.decode(rows)
}

// List treats a nil bound as open.
func (r *BlackoutReadStore) List(ctx context.Context, from, to *calendar.Date) ([]*availability.BlackoutPeriod, error) {
	rows, err := r.queries.ListBlackoutPeriods(ctx, r.db, pgconv.DatePtrToPgtype(from), pgconv.DatePtrToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackout periods", err)
	}
	return r.decode(rows)
}

func (r *BlackoutReadStore) decode(rows []sqlstore.BlackoutPeriods) ([]*availability.BlackoutPeriod, error) {
	items, err := converter.BlackoutsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode blackout periods", err)
	}
	return items, nil
}
