// Package phone normalizes customer phone numbers to E.164.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "US"

var ErrInvalidPhone = errors.New("invalid phone number")

// Normalize parses raw in the default region and returns its E.164 form.
func Normalize(raw string) (string, error) {
	return NormalizeIn(raw, DefaultRegion)
}

func NormalizeIn(raw, region string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidPhone
	}
	num, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// Display formats an E.164 number for humans, e.g. in emails.
func Display(e164 string) string {
	num, err := phonenumbers.Parse(e164, DefaultRegion)
	if err != nil {
		return e164
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}
