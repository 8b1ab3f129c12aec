package components

import (
	"context"

	"party-rental/internal/infra/cache"
	"party-rental/internal/infra/docstore"
	"party-rental/internal/infra/readstore"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/infra/uow"
	"party-rental/internal/pkg/config"
	"party-rental/internal/usecase/commands"
	"party-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
	docstoreModule,
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.ReservationReader)),
		),
		// Blackout
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlackoutReadQueries)),
		),
		fx.Annotate(
			readstore.NewBlackoutReadStore,
			fx.As(new(queries.BlackoutListReader)),
			fx.As(new(queries.BlackoutCoverageReader)),
		),
		// Settings
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingsReadQueries)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(cache.SettingsSource)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewSettingsCache,
			fx.As(new(queries.SettingsReader)),
			fx.As(new(commands.SettingsCacheInvalidator)),
		),
	),
)

var docstoreModule = fx.Module("persistence/docstore",
	fx.Provide(
		fx.Annotate(
			NewContactStore,
			fx.As(new(commands.ContactRepository)),
			fx.As(new(queries.ContactReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}

func NewSettingsCache(client redis.Cmdable, source cache.SettingsSource, cfg config.Config) *cache.SettingsCache {
	return cache.NewSettingsCache(client, source, cfg.Redis.SettingsTTL)
}

func NewContactStore(lc fx.Lifecycle, db *mongo.Database) *docstore.ContactStore {
	store := docstore.NewContactStore(db)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureIndexes(ctx)
		},
	})
	return store
}
