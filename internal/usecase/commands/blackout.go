package commands

import (
	"context"
	"log/slog"

	"party-rental/internal/domain/availability"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/usecase/queries"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlackoutCommands interface {
	Create(ctx context.Context, req reqdto.BlackoutRequest, actorID uuid.UUID) (*queries.BlackoutView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.BlackoutRequest) (*queries.BlackoutView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blackoutCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlackoutCommands(uow shared.UnitOfWork, clk clock.Clock) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow, clock: clk}
}

func (c *blackoutCommandsImpl) Create(ctx context.Context, req reqdto.BlackoutRequest, actorID uuid.UUID) (*queries.BlackoutView, error) {
	period, err := availability.NewBlackoutPeriod(req.ToDomain(), actorID, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blackouts().Create(ctx, period)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("blackout created", "blackout_id", period.ID(), "start_date", period.StartDate().String(), "created_by", actorID)
	return queries.NewBlackoutView(period), nil
}

func (c *blackoutCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.BlackoutRequest) (*queries.BlackoutView, error) {
	var updated *availability.BlackoutPeriod
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		period, err := tx.Reads().BlackoutByID(ctx, id)
		if err != nil {
			return mapBlackoutNotFound(err)
		}
		if err := period.Update(req.ToDomain(), c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Blackouts().Update(ctx, period); err != nil {
			return mapBlackoutNotFound(err)
		}
		updated = period
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewBlackoutView(updated), nil
}

func (c *blackoutCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blackouts().Delete(ctx, id)
	})
	if err != nil {
		return mapBlackoutNotFound(err)
	}
	slog.Info("blackout deleted", "blackout_id", id)
	return nil
}

func mapBlackoutNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return availability.ErrBlackoutNotFound
	}
	return err
}
