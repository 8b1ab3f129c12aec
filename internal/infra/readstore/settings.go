package readstore

import (
	"context"

	"party-rental/internal/domain/settings"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/pgconv"
)

type SettingsReadQueries interface {
	GetSettings(ctx context.Context, db sqlstore.DBTX) (sqlstore.Settings, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      sqlstore.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db sqlstore.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

// Get returns the defaults until an admin saves settings for the first time.
func (r *SettingsReadStore) Get(ctx context.Context) (*settings.Settings, error) {
	row, err := r.queries.GetSettings(ctx, r.db)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return settings.Default(), nil
		}
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}
	s, err := converter.SettingsFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode settings", err)
	}
	return s, nil
}
