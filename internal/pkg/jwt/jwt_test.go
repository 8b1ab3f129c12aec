//go:build unit

package jwt

import (
	"testing"
	"time"

	"party-rental/internal/domain/user"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("generated token validates", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := svc.GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)

		svc.now = time.Now

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tokens are unique per login", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		fixed := time.Now()
		svc.now = func() time.Time { return fixed }

		a, err := svc.GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)
		b, err := svc.GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := Claims{
			UserID: userID,
			Role:   "admin",
			RegisteredClaims: jwtlib.RegisteredClaims{
				Issuer:    "someone-else",
				Audience:  jwtlib.ClaimStrings{audience},
				ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
