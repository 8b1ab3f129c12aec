package bootstrap

import (
	"context"
	"time"

	"party-rental/internal/infra/scheduler"
	"party-rental/internal/pkg/config"
	"party-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

const schedulerJobTimeout = 2 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(cfg config.Config) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Business.Location(), schedulerJobTimeout)
}

func startScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	s *scheduler.Scheduler,
	notifications commands.NotificationCommands,
	bookings commands.BookingCommands,
) error {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if !cfg.Scheduler.Enabled {
				return nil
			}
			if err := scheduler.RegisterJobs(s, cfg.Scheduler, notifications, bookings); err != nil {
				return err
			}
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
	return nil
}
