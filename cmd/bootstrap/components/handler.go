package components

import (
	"party-rental/internal/handler"
	"party-rental/internal/handler/api"
	"party-rental/internal/handler/middleware"
	"party-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewBlackoutHandler,
		api.NewSettingsHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Booking  *api.BookingHandler
	Blackout *api.BlackoutHandler
	Settings *api.SettingsHandler
	Contact  *api.ContactHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		Catalog:  p.Catalog,
		Booking:  p.Booking,
		Blackout: p.Blackout,
		Settings: p.Settings,
		Contact:  p.Contact,
	}
}

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
