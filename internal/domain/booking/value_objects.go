package booking

import (
	"errors"
	"strings"

	"party-rental/internal/domain/user"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/phone"
)

const (
	maxAddressLength = 300
	maxNotesLength   = 1000
)

var (
	ErrPhoneRequired   = errs.Invalid(errors.New("phone number is required"))
	ErrInvalidAddress  = errs.Invalid(errors.New("event address must be 1-300 characters"))
	ErrNotesTooLong    = errs.Invalid(errors.New("notes must be at most 1000 characters"))
	ErrInvalidMixerKey = errs.Invalid(errors.New("mixer key must not be empty"))
)

type Customer struct {
	name  user.Name
	email user.Email
	phone string
}

func NewCustomer(name, email, rawPhone string) (Customer, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Customer{}, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Customer{}, err
	}
	if strings.TrimSpace(rawPhone) == "" {
		return Customer{}, ErrPhoneRequired
	}
	p, err := phone.Normalize(rawPhone)
	if err != nil {
		return Customer{}, errs.Invalid(err)
	}
	return Customer{name: n, email: e, phone: p}, nil
}

// ReconstructCustomer trusts values already validated on the way in.
func ReconstructCustomer(name, email, phoneE164 string) Customer {
	n, _ := user.NewName(name)
	e, _ := user.NewEmail(email)
	return Customer{name: n, email: e, phone: phoneE164}
}

func (c Customer) Name() string  { return c.name.String() }
func (c Customer) Email() string { return c.email.Value() }

// Phone is in E.164 form.
func (c Customer) Phone() string { return c.phone }

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" || len([]rune(s)) > maxAddressLength {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: s}, nil
}

// ReconstructAddress rebuilds a stored address without validation.
func ReconstructAddress(s string) Address {
	return Address{value: s}
}

func (a Address) String() string {
	return a.value
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) > maxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func ReconstructNotes(s string) Notes {
	return Notes{value: s}
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
