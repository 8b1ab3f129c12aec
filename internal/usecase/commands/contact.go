package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"party-rental/internal/domain/contact"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/usecase/queries"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactCommands interface {
	Submit(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ContactView, error)
}

type contactCommandsImpl struct {
	contacts ContactRepository
	uow      shared.UnitOfWork
	clock    clock.Clock
}

func NewContactCommands(contacts ContactRepository, uow shared.UnitOfWork, clk clock.Clock) ContactCommands {
	return &contactCommandsImpl{contacts: contacts, uow: uow, clock: clk}
}

func (c *contactCommandsImpl) Submit(ctx context.Context, req reqdto.CreateContactRequest) (*queries.ContactView, error) {
	now := c.clock.Now()
	inquiry, err := contact.NewContact(req.Name, req.Email, req.Phone, req.Message, now)
	if err != nil {
		return nil, err
	}

	if err := c.contacts.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	// The inquiry is already stored, so a failed enqueue only costs the email.
	payload, err := json.Marshal(shared.ContactNotification{
		ContactID: inquiry.ID(),
		Name:      inquiry.Name(),
		Email:     inquiry.Email(),
		Phone:     inquiry.Phone(),
		Message:   inquiry.Message(),
	})
	if err == nil {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.NotificationTopicContactReceived, payload, now)
		})
	}
	if err != nil {
		slog.Warn("failed to enqueue contact notification", "contact_id", inquiry.ID(), "error", err.Error())
	}

	return queries.NewContactView(inquiry), nil
}

func (c *contactCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ContactView, error) {
	next, err := contact.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	inquiry, err := c.contacts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, contact.ErrContactNotFound
		}
		return nil, err
	}

	if err := inquiry.ChangeStatus(next, c.clock.Now()); err != nil {
		return nil, err
	}
	if err := c.contacts.UpdateStatus(ctx, inquiry); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, contact.ErrContactNotFound
		}
		return nil, err
	}
	return queries.NewContactView(inquiry), nil
}
