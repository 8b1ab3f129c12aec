// Package cookie carries the staff session token for browser clients.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"party-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	ck := session(cfg, accessToken)
	ck.MaxAge = int(expiry.Seconds())
	ck.Expires = time.Now().Add(expiry)
	http.SetCookie(c.Writer, ck)
}

// ClearAccessToken must use the same attributes as SetAccessToken or the
// browser keeps the original cookie.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	ck := session(cfg, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	http.SetCookie(c.Writer, ck)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func session(cfg config.CookieConfig, value string) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
