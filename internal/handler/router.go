package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"party-rental/internal/domain/user"
	"party-rental/internal/handler/api"
	"party-rental/internal/handler/middleware"
	"party-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Booking  *api.BookingHandler
	Blackout *api.BlackoutHandler
	Settings *api.SettingsHandler
	Contact  *api.ContactHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.RequestLogger())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{limiter.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.GetCatalog},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Catalog.Quote},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Catalog.CheckAvailability},
			{Method: http.MethodPost, Path: "/recommendations", Handler: h.Catalog.Recommend},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: limited},
			{Method: http.MethodPost, Path: "/contacts", Handler: h.Contact.Submit, Mw: limited},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.ChangeStatus},

				{Method: http.MethodGet, Path: "/contacts", Handler: h.Contact.List},
				{Method: http.MethodPatch, Path: "/contacts/:id/status", Handler: h.Contact.ChangeStatus},

				{Method: http.MethodGet, Path: "/blackouts", Handler: h.Blackout.List, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/blackouts", Handler: h.Blackout.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/blackouts/:id", Handler: h.Blackout.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/blackouts/:id", Handler: h.Blackout.Delete, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.Get, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.Update, Mw: adminOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
