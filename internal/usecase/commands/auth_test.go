//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"party-rental/internal/domain/auth"
	"party-rental/internal/domain/user"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/pkg/password"
	"party-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	const plain = "correct-horse-battery"
	hash, err := password.HashPassword(plain)
	require.NoError(t, err)

	staff := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    "staff@example.com",
		Name:     "Front Desk",
		Role:     user.RoleStaff,
		IsActive: true,
	}

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		store := new(MockUserReadStore)
		tokens := new(MockTokenIssuer)
		store.On("FindByEmail", mock.Anything, "staff@example.com").Return(staff, hash, nil)
		tokens.On("GenerateToken", staff.ID, user.RoleStaff).Return("signed-token", nil)
		tokens.On("TokenDuration").Return(12 * time.Hour)
		uow.tx.users.On("UpdateLastLogin", mock.Anything, staff.ID).Return(nil)

		got, err := NewAuthCommands(uow, store, tokens).Login(context.Background(), reqdto.LoginRequest{
			Email:    "Staff@Example.com",
			Password: plain,
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", got.AccessToken)
		assert.Equal(t, 12*time.Hour, got.ExpiresIn)
		assert.Equal(t, staff.ID, got.User.ID)
		uow.tx.users.AssertExpectations(t)
	})

	t.Run("last login failure is ignored", func(t *testing.T) {
		uow := newFakeUoW()
		store := new(MockUserReadStore)
		tokens := new(MockTokenIssuer)
		store.On("FindByEmail", mock.Anything, mock.Anything).Return(staff, hash, nil)
		tokens.On("GenerateToken", mock.Anything, mock.Anything).Return("signed-token", nil)
		tokens.On("TokenDuration").Return(time.Hour)
		uow.tx.users.On("UpdateLastLogin", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := NewAuthCommands(uow, store, tokens).Login(context.Background(), reqdto.LoginRequest{Email: staff.Email, Password: plain})
		assert.NoError(t, err)
	})

	t.Run("failures", func(t *testing.T) {
		inactive := *staff
		inactive.IsActive = false

		tests := []struct {
			name     string
			password string
			view     *queries.AuthorizedUserView
			findErr  error
			wantErr  error
		}{
			{name: "unknown email", password: plain, findErr: assert.AnError, wantErr: auth.ErrInvalidCredentials},
			{name: "wrong password", password: "wrong-password-1", view: staff, wantErr: auth.ErrInvalidCredentials},
			{name: "disabled account", password: plain, view: &inactive, wantErr: auth.ErrInactiveUser},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uow := newFakeUoW()
				store := new(MockUserReadStore)
				tokens := new(MockTokenIssuer)
				if tt.findErr != nil {
					store.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, "", tt.findErr)
				} else {
					store.On("FindByEmail", mock.Anything, mock.Anything).Return(tt.view, hash, nil)
				}

				_, err := NewAuthCommands(uow, store, tokens).Login(context.Background(), reqdto.LoginRequest{
					Email:    staff.Email,
					Password: tt.password,
				})

				assert.ErrorIs(t, err, tt.wantErr)
				tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
			})
		}
	})
}
