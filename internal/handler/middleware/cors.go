package middleware

import (
	"log/slog"
	"net/http"

	"party-rental/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// replayHeaders lets the storefront see booking replay and request tracing
// headers on cross-origin responses.
var replayHeaders = []string{"Idempotent-Replayed", requestIDHeader, "Retry-After"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := append([]string{}, cfg.ExposeHeaders...)
	for _, h := range replayHeaders {
		if !containsHeader(expose, h) {
			expose = append(expose, h)
		}
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func containsHeader(headers []string, h string) bool {
	for _, v := range headers {
		if http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(h) {
			return true
		}
	}
	return false
}
