//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"party-rental/internal/handler/dto/request"
	"party-rental/internal/handler/dto/response"
	"party-rental/internal/pkg/cookie"
	"party-rental/tests/common/dbtest"
	"party-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const loginPath = "/api/auth/login"

// LoginUser signs in through the public endpoint and returns the bearer
// token. The body token and the session cookie must agree.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.AccessToken)

	session := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, session, "login did not set the session cookie")
	require.Equal(t, body.AccessToken, session.Value)

	return body.AccessToken
}

// CreateAndLogin seeds an active staff account with the default password.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.DefaultPassword)
}
