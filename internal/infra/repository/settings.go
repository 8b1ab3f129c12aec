package repository

import (
	"context"

	"party-rental/internal/domain/settings"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"
)

type SettingsWriteQueries interface {
	UpsertSettings(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertSettingsParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      sqlstore.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db sqlstore.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	params, err := converter.SettingsToUpsertParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode settings", err)
	}
	if err := r.queries.UpsertSettings(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to save settings", err)
	}
	return nil
}
