//go:build unit

package commands

import (
	"context"
	"testing"

	"party-rental/internal/domain/contact"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/patch"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact(t *testing.T) {
	req := reqdto.CreateContactRequest{
		Name:    "Sam Ortiz",
		Email:   "sam@example.com",
		Phone:   patch.Ptr("(512) 555-0100"),
		Message: "Do you deliver to Round Rock?",
	}

	t.Run("stores and notifies", func(t *testing.T) {
		uow := newFakeUoW()
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, uow, clock.NewMockClock(testNow))
		store.On("Create", mock.Anything, mock.AnythingOfType("*contact.Contact")).Return(nil)
		uow.tx.notifications.On("CreateJob", mock.Anything, shared.NotificationKindEmail, shared.NotificationTopicContactReceived, mock.Anything, testNow).Return(nil)

		got, err := cmds.Submit(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "new", got.Status)
		require.NotNil(t, got.Phone)
		assert.Equal(t, "+15125550100", *got.Phone)
		uow.tx.notifications.AssertExpectations(t)
	})

	t.Run("enqueue failure still returns the stored inquiry", func(t *testing.T) {
		uow := newFakeUoW()
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, uow, clock.NewMockClock(testNow))
		store.On("Create", mock.Anything, mock.Anything).Return(nil)
		uow.tx.notifications.On("CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := cmds.Submit(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		uow := newFakeUoW()
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, uow, clock.NewMockClock(testNow))
		store.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := cmds.Submit(context.Background(), req)
		assert.ErrorIs(t, err, assert.AnError)
		uow.tx.notifications.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty message", func(t *testing.T) {
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, newFakeUoW(), clock.NewMockClock(testNow))

		_, err := cmds.Submit(context.Background(), reqdto.CreateContactRequest{Name: "Sam", Email: "sam@example.com", Message: "  "})
		assert.ErrorIs(t, err, contact.ErrInvalidMessage)
		assert.True(t, errs.IsInvalidInput(err))
	})
}

func TestChangeContactStatus(t *testing.T) {
	t.Run("mark read", func(t *testing.T) {
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, newFakeUoW(), clock.NewMockClock(testNow))
		c := contact.ReconstructContact(uuid.New(), "Sam Ortiz", "sam@example.com", nil, "hello", contact.StatusNew, testNow, testNow)
		store.On("FindByID", mock.Anything, c.ID()).Return(c, nil)
		store.On("UpdateStatus", mock.Anything, c).Return(nil)

		got, err := cmds.ChangeStatus(context.Background(), c.ID(), "read")

		require.NoError(t, err)
		assert.Equal(t, "read", got.Status)
	})

	t.Run("missing inquiry", func(t *testing.T) {
		store := new(MockContactRepository)
		cmds := NewContactCommands(store, newFakeUoW(), clock.NewMockClock(testNow))
		id := uuid.New()
		store.On("FindByID", mock.Anything, id).Return(nil, infra.WrapRepoErr("contact not found", nil, infra.KindNotFound))

		_, err := cmds.ChangeStatus(context.Background(), id, "read")
		assert.ErrorIs(t, err, contact.ErrContactNotFound)
	})
}
