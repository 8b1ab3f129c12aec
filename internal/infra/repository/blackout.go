package repository

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type BlackoutWriteQueries interface {
	CreateBlackoutPeriod(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateBlackoutPeriodParams) error
	UpdateBlackoutPeriod(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateBlackoutPeriodParams) (int64, error)
	DeleteBlackoutPeriod(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (int64, error)
}

type BlackoutRepository struct {
	queries BlackoutWriteQueries
	db      sqlstore.DBTX
}

func NewBlackoutRepository(queries BlackoutWriteQueries, db sqlstore.DBTX) *BlackoutRepository {
	return &BlackoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *availability.BlackoutPeriod) error {
	if err := r.queries.CreateBlackoutPeriod(ctx, r.db, converter.BlackoutToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create blackout period", err)
	}
	return nil
}

func (r *BlackoutRepository) Update(ctx context.Context, b *availability.BlackoutPeriod) error {
	affected, err := r.queries.UpdateBlackoutPeriod(ctx, r.db, converter.BlackoutToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update blackout period", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("blackout period not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBlackoutPeriod(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blackout period", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("blackout period not found", nil, infra.KindNotFound)
	}
	return nil
}
