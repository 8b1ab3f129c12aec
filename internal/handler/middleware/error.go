package middleware

import (
	"log/slog"
	"net/http"

	"party-rental/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that were recorded on the context but never
// written. Public errors carry their response; anything else is mapped by
// its error mark.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status == http.StatusInternalServerError {
			resp.Error.Message = "Internal server error"
			slog.Error("unhandled request error", "error", last.Err, "request_id", GetRequestID(c))
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic",
			"error", recovered,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c))

		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
