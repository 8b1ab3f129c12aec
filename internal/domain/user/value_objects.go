package user

import (
	"errors"
	"regexp"
	"strings"

	"party-rental/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Invalid(errors.New("invalid email format"))
	ErrInvalidRole     = errs.Invalid(errors.New("invalid role"))
	ErrInvalidName     = errs.Invalid(errors.New("name must be 1-100 characters"))
	ErrPasswordTooWeak = errs.Invalid(errors.New("password must be at least 8 characters long"))
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const maxNameLength = 100

type Email struct {
	value string
}

// NewEmail trims and lowercases s before validating it.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
