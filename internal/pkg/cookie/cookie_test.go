//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"party-rental/internal/pkg/config"
	"party-rental/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issued(t *testing.T, cfg config.CookieConfig) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cookie.SetAccessToken(c, cfg, "tok", time.Hour)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetAccessToken(t *testing.T) {
	t.Run("http only with configured same site", func(t *testing.T) {
		ck := issued(t, config.CookieConfig{SameSite: "Strict", Secure: true})

		assert.Equal(t, "tok", ck.Value)
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
		assert.Equal(t, 3600, ck.MaxAge)
	})

	t.Run("same site none forces secure", func(t *testing.T) {
		ck := issued(t, config.CookieConfig{SameSite: "None", Secure: false})

		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	})

	t.Run("unknown same site falls back to lax", func(t *testing.T) {
		ck := issued(t, config.CookieConfig{SameSite: "bogus"})

		assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	})
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, cookie.GetAccessToken(c))

	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "abc"})
	assert.Equal(t, "abc", cookie.GetAccessToken(c))
}
