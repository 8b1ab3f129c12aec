package components

import (
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/jwt"
	"party-rental/internal/usecase"
	"party-rental/internal/usecase/commands"
	"party-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	domainModule,
	commandsModule,
	queriesModule,
)

var domainModule = fx.Module("usecase/domain",
	fx.Provide(
		clock.NewRealClock,
		catalog.Default,
		pricing.NewCalculator,
		NewBookingFactory,
		NewDispatchConfig,
		NewTokenIssuer,
		usecase.NewTokenValidator,
	),
)

var commandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewBlackoutCommands,
		commands.NewSettingsCommands,
		commands.NewContactCommands,
		commands.NewAuthCommands,
		commands.NewNotificationCommands,
	),
)

var queriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewRecommendationQueries,
		queries.NewBookingQueries,
		queries.NewBlackoutQueries,
		queries.NewSettingsQueries,
		queries.NewContactQueries,
		queries.NewUserQueries,
	),
)

func NewBookingFactory(clk clock.Clock, calc *pricing.Calculator, cat *catalog.Catalog, cfg config.Config) *booking.Factory {
	f := booking.NewFactory(clk, calc, cat, cfg.Business.Location())
	f.MaxRentalDays = cfg.Business.MaxRentalDays
	return f
}

func NewDispatchConfig(cfg config.Config) commands.DispatchConfig {
	return commands.DispatchConfig{
		BatchSize:     cfg.Scheduler.NotificationBatch,
		MaxAttempts:   cfg.Scheduler.MaxAttempts,
		Lease:         cfg.Scheduler.NotificationLease,
		BusinessName:  cfg.Business.Name,
		BusinessEmail: cfg.Business.ContactEmail,
	}
}

func NewTokenIssuer(s *jwt.Service) commands.TokenIssuer {
	return s
}
