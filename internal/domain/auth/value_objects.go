// Package auth holds the staff login rules.
package auth

import (
	"errors"

	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.Mark(errors.New("invalid email or password"), errs.ErrUnauthorized)
	ErrInactiveUser       = errs.Mark(errors.New("account is disabled"), errs.ErrForbidden)
)

// Credentials is one login attempt. The plain password only leaves this
// type to be compared against a stored hash.
type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{email: email, password: pw}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

// Verify reports any mismatch as ErrInvalidCredentials.
func (c Credentials) Verify(hash string) error {
	if err := password.ComparePassword(hash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RejectUnknown answers a login for an email with no account. It costs the
// same bcrypt work as Verify so timing does not reveal registered emails.
func (c Credentials) RejectUnknown() error {
	password.CompareDummy(c.password.Value())
	return ErrInvalidCredentials
}
