//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/jwt"
	"party-rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("staff token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleStaff)
		require.NoError(t, err)

		id, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleStaff, role)
	})

	t.Run("unknown role claim", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.Role("viewer"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("tampered token", func(t *testing.T) {
		_, _, err := validator.ValidateToken("a.b.c")
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
