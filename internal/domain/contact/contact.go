// Package contact models inquiries sent through the public contact form.
package contact

import (
	"errors"
	"strings"
	"time"

	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/phone"

	"github.com/google/uuid"
)

const MaxMessageLength = 2000

var (
	ErrInvalidMessage          = errs.Invalid(errors.New("message must be 1-2000 characters"))
	ErrInvalidStatus           = errs.Invalid(errors.New("contact status must be new, read or archived"))
	ErrInvalidStatusTransition = errs.Mark(errors.New("archived inquiries cannot be reopened"), errs.ErrConflict)
	ErrContactNotFound         = errs.Mark(errors.New("contact not found"), errs.ErrNotFound)
)

type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusRead, StatusArchived:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Contact struct {
	id        uuid.UUID
	name      user.Name
	email     user.Email
	phone     *string
	message   string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewContact validates a form submission. Phone is optional.
func NewContact(name, email string, rawPhone *string, message string, now time.Time) (*Contact, error) {
	n, err := user.NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	var p *string
	if rawPhone != nil && strings.TrimSpace(*rawPhone) != "" {
		normalized, err := phone.Normalize(*rawPhone)
		if err != nil {
			return nil, errs.Invalid(err)
		}
		p = &normalized
	}

	message = strings.TrimSpace(message)
	if message == "" || len([]rune(message)) > MaxMessageLength {
		return nil, ErrInvalidMessage
	}

	return &Contact{
		id:        uuid.New(),
		name:      n,
		email:     e,
		phone:     p,
		message:   message,
		status:    StatusNew,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructContact(
	id uuid.UUID,
	name, email string,
	phoneE164 *string,
	message string,
	status Status,
	createdAt, updatedAt time.Time,
) *Contact {
	n, _ := user.NewName(name)
	e, _ := user.NewEmail(email)
	return &Contact{
		id:        id,
		name:      n,
		email:     e,
		phone:     phoneE164,
		message:   message,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ChangeStatus allows any move except out of archived.
func (c *Contact) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if c.status == StatusArchived && next != StatusArchived {
		return ErrInvalidStatusTransition
	}
	c.status = next
	c.updatedAt = now
	return nil
}

func (c *Contact) ID() uuid.UUID        { return c.id }
func (c *Contact) Name() string         { return c.name.String() }
func (c *Contact) Email() string        { return c.email.Value() }
func (c *Contact) Phone() *string       { return c.phone }
func (c *Contact) Message() string      { return c.message }
func (c *Contact) Status() Status       { return c.status }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }
