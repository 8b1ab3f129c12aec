package scheduler

import (
	"context"
	"log/slog"

	"party-rental/internal/pkg/config"
	"party-rental/internal/usecase/commands"
)

const (
	JobNotificationDispatch = "notification_dispatch"
	JobBookingCompletion    = "booking_completion"
)

func RegisterJobs(
	s *Scheduler,
	cfg config.SchedulerConfig,
	notifications commands.NotificationCommands,
	bookings commands.BookingCommands,
) error {
	err := s.AddIntervalJob(JobNotificationDispatch, cfg.NotificationInterval, func(ctx context.Context) error {
		result, err := notifications.DispatchDue(ctx)
		if err != nil {
			return err
		}
		if result != (commands.DispatchResult{}) {
			slog.Info("notifications dispatched", "sent", result.Sent, "retried", result.Retried, "dead", result.Dead)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.AddCronJob(JobBookingCompletion, cfg.CompletionCron, func(ctx context.Context) error {
		n, err := bookings.CompleteOverdue(ctx)
		if err != nil {
			return err
		}
		slog.Info("overdue bookings completed", "count", n)
		return nil
	})
}
