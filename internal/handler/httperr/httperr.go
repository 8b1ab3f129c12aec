package httperr

import (
	"net/http"

	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error to a status by its mark. Unmarked errors become
// a 500 with a generic message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, publicMessage(err), detailOf(err))
}

func StatusOf(err error) int {
	switch {
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrUnavailable), errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage drops wrap prefixes added by inner layers.
func publicMessage(err error) string {
	if cause := cr.Cause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}

func detailOf(err error) any {
	var v *settings.ValidationError
	if !cr.As(err, &v) {
		return nil
	}
	fields := make([]gin.H, 0, len(v.Fields))
	for _, f := range v.Fields {
		fields = append(fields, gin.H{"field": f.Field, "message": f.Message})
	}
	return fields
}
