package commands

import (
	"context"
	"log/slog"

	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/usecase/queries"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettingsCommands interface {
	Update(ctx context.Context, req reqdto.UpdateSettingsRequest, actorID uuid.UUID) (*queries.SettingsView, error)
}

type settingsCommandsImpl struct {
	uow   shared.UnitOfWork
	cache SettingsCacheInvalidator
	clock clock.Clock
}

func NewSettingsCommands(uow shared.UnitOfWork, cache SettingsCacheInvalidator, clk clock.Clock) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// Update replaces the whole settings record. Omitted overrides fall back to
// catalog defaults.
func (c *settingsCommandsImpl) Update(ctx context.Context, req reqdto.UpdateSettingsRequest, actorID uuid.UUID) (*queries.SettingsView, error) {
	s, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.UpdatedBy = &actorID
	s.UpdatedAt = c.clock.Now()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Save(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	// stale entries expire on their own TTL
	if err := c.cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate settings cache", "error", err.Error())
	}

	slog.Info("settings updated", "updated_by", actorID)
	return queries.NewSettingsView(s), nil
}
