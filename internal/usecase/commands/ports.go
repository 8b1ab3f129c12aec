package commands

import (
	"context"

	"party-rental/internal/domain/contact"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// Contacts live in the document store, outside the relational unit of work.
type ContactRepository interface {
	Create(ctx context.Context, c *contact.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error)
	UpdateStatus(ctx context.Context, c *contact.Contact) error
}

type SettingsCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Mailer interface {
	Send(ctx context.Context, msg shared.EmailMessage) error
}
