//go:build unit

package httperr

import (
	"errors"
	"net/http"
	"testing"

	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"invalid input":       {err: errs.Invalid(errors.New("bad")), want: http.StatusBadRequest},
		"wrapped invalid":     {err: errs.Wrap(booking.ErrReturnBeforeRental, "create booking"), want: http.StatusBadRequest},
		"not found":           {err: booking.ErrBookingNotFound, want: http.StatusNotFound},
		"unavailable":         {err: errs.Wrapf(booking.ErrNotAvailable, "date %s", "2026-07-04"), want: http.StatusConflict},
		"conflict":            {err: booking.ErrInvalidStatusTransition, want: http.StatusConflict},
		"unauthorized":        {err: errs.Mark(errors.New("no"), errs.ErrUnauthorized), want: http.StatusUnauthorized},
		"forbidden":           {err: errs.Mark(errors.New("no"), errs.ErrForbidden), want: http.StatusForbidden},
		"unmarked":            {err: errors.New("connection reset"), want: http.StatusInternalServerError},
		"settings validation": {err: settingsError(), want: http.StatusBadRequest},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestPublicMessageDropsWrapContext(t *testing.T) {
	err := errs.Wrapf(booking.ErrNotAvailable, "date %s", "2026-07-04")
	assert.Equal(t, "machine is not available for the selected dates", publicMessage(err))
}

func TestDetailOfSettingsValidation(t *testing.T) {
	detail := detailOf(settingsError())
	assert.NotNil(t, detail)
	assert.Nil(t, detailOf(booking.ErrBookingNotFound))
}

func settingsError() error {
	fee := -1.0
	s := settings.Default()
	s.Pricing.DeliveryFee = &fee
	return s.Validate()
}
