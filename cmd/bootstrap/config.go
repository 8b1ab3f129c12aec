package bootstrap

import (
	"time"

	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig refuses to start with settings that would only fail later,
// such as an unknown business time zone that would shift every booking day.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	if _, err := time.LoadLocation(cfg.Business.TimeZone); err != nil {
		return config.Config{}, errs.Wrapf(err, "BUSINESS_TIMEZONE %q", cfg.Business.TimeZone)
	}
	if _, err := time.ParseDuration(cfg.JWT.AccessTokenDuration); err != nil {
		return config.Config{}, errs.Wrap(err, "JWT_ACCESS_TOKEN_DURATION")
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		return config.Config{}, errs.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if cfg.Business.MaxRentalDays <= 0 {
		return config.Config{}, errs.New("BUSINESS_MAX_RENTAL_DAYS must be positive")
	}
	if cfg.Scheduler.Enabled && cfg.Scheduler.NotificationInterval <= 0 {
		return config.Config{}, errs.New("SCHEDULER_NOTIFICATION_INTERVAL must be positive")
	}

	return cfg, nil
}
