package bootstrap

import (
	"context"
	"log/slog"

	"party-rental/internal/infra/notify"
	"party-rental/internal/pkg/config"
	"party-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) (commands.Mailer, error) {
	if !cfg.SES.Enabled() {
		slog.Warn("SES is not configured; emails will only be logged")
		return notify.NewLogMailer(), nil
	}
	return notify.NewSESMailer(context.Background(), cfg.SES)
}
