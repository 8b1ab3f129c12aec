//go:build unit

package booking_test

import (
	"testing"
	"time"

	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/patch"
	"party-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFactory() *booking.Factory {
	return booking.NewFactory(
		clock.NewMockClock(time.Now()),
		pricing.NewDefaultCalculator(),
		catalog.Default(),
		time.UTC,
	)
}

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestCreateBooking(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain(newFactory(), nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, catalog.MachineDouble, b.MachineType())
		assert.Equal(t, catalog.Capacity30, b.Capacity())
		assert.Equal(t, "+15128675309", b.Customer().Phone())
		assert.Equal(t, 2, b.Days())
		assert.InDelta(t, 44.90, b.Price().MixerPrice, 1e-9)
		assert.Equal(t, 169.95, b.Price().BasePrice)
		assert.False(t, b.CreatedAt().IsZero())
	})

	t.Run("prices with overrides", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain(newFactory(), &pricing.Overrides{DeliveryFee: patch.Ptr(35.0)})
		require.NoError(t, err)
		assert.Equal(t, 35.0, b.Price().DeliveryFee)
	})

	t.Run("return date defaults to rental date", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		bb.ReturnDate = ""
		b, err := bb.BuildDomain(newFactory(), nil)
		require.NoError(t, err)
		assert.Equal(t, b.RentalDate(), b.ReturnDate())
		assert.Equal(t, 1, b.Days())
	})

	today := calendar.FromTime(time.Now().UTC())

	runCases(t, []testCase{
		{
			name:   "rental today is allowed",
			mutate: func(b *builder.BookingBuilder) { b.WithDates(today.String(), today.String()) },
		},
		{
			name:   "fewer mixers than tanks",
			mutate: func(b *builder.BookingBuilder) { b.WithMixers("margarita") },
		},
		{
			name:   "rental in the past",
			mutate: func(b *builder.BookingBuilder) { b.WithDates(today.AddDays(-1).String(), today.String()) },
			errIs:  booking.ErrRentalDateInPast,
		},
		{
			name: "return before rental",
			mutate: func(b *builder.BookingBuilder) {
				b.WithDates(today.AddDays(5).String(), today.AddDays(4).String())
			},
			errIs: booking.ErrReturnBeforeRental,
		},
		{
			name: "rental up to the maximum span",
			mutate: func(b *builder.BookingBuilder) {
				b.WithDates(today.String(), today.AddDays(booking.DefaultMaxRentalDays-1).String())
			},
		},
		{
			name: "rental longer than the maximum span",
			mutate: func(b *builder.BookingBuilder) {
				b.WithDates(today.String(), today.AddDays(booking.DefaultMaxRentalDays).String())
			},
			errIs: booking.ErrRentalTooLong,
		},
		{
			name:   "return date far in the future",
			mutate: func(b *builder.BookingBuilder) { b.WithDates(today.String(), "9999-12-31") },
			errIs:  booking.ErrRentalTooLong,
		},
		{
			name:   "bad rental date",
			mutate: func(b *builder.BookingBuilder) { b.WithDates("next friday", "") },
			errIs:  calendar.ErrInvalidDateFormat,
		},
		{
			name:   "unknown machine",
			mutate: func(b *builder.BookingBuilder) { b.WithMachine("quad", 30) },
			errIs:  catalog.ErrInvalidMachineType,
		},
		{
			name:   "unknown capacity",
			mutate: func(b *builder.BookingBuilder) { b.WithMachine("double", 20) },
			errIs:  catalog.ErrInvalidCapacity,
		},
		{
			name:   "capacity of another tier",
			mutate: func(b *builder.BookingBuilder) { b.WithMachine("double", 45) },
			errIs:  booking.ErrCapacityMismatch,
		},
		{
			name: "too many mixers",
			mutate: func(b *builder.BookingBuilder) {
				b.WithMachine("single", 15).WithMixers("margarita", "pina-colada")
			},
			errIs: booking.ErrTooManyMixers,
		},
		{
			name:   "blank mixer",
			mutate: func(b *builder.BookingBuilder) { b.WithMixers(" ") },
			errIs:  booking.ErrInvalidMixerKey,
		},
		{
			name:   "bad email",
			mutate: func(b *builder.BookingBuilder) { b.WithEmail("jordan") },
			errIs:  errs.ErrInvalidInput,
		},
		{
			name:   "missing phone",
			mutate: func(b *builder.BookingBuilder) { b.WithPhone("") },
			errIs:  booking.ErrPhoneRequired,
		},
		{
			name:   "bad phone",
			mutate: func(b *builder.BookingBuilder) { b.WithPhone("12") },
			errIs:  errs.ErrInvalidInput,
		},
		{
			name:   "missing address",
			mutate: func(b *builder.BookingBuilder) { b.EventAddress = "" },
			errIs:  booking.ErrInvalidAddress,
		},
	})
}

func TestChangeStatus(t *testing.T) {
	tests := []struct {
		from booking.Status
		to   booking.Status
		ok   bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusInProgress, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusInProgress, booking.StatusCompleted, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusInProgress, booking.StatusCancelled, false},
		{booking.StatusCompleted, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusConfirmed, booking.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := withStatus(tt.from, "2030-01-01", "2030-01-02")
			later := time.Now().Add(time.Hour)

			err := b.ChangeStatus(tt.to, later)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, b.Status())
				assert.Equal(t, later, b.UpdatedAt())
				return
			}
			require.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
			assert.True(t, errs.Is(err, errs.ErrConflict))
			assert.Equal(t, tt.from, b.Status())
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		b := withStatus(booking.StatusPending, "2030-01-01", "2030-01-01")
		require.ErrorIs(t, b.ChangeStatus("lost", time.Now()), booking.ErrInvalidStatus)
	})
}

func TestCompleteOverdue(t *testing.T) {
	today := calendar.MustParse("2030-01-10")

	confirmed := withStatus(booking.StatusConfirmed, "2030-01-05", "2030-01-09")
	done, err := confirmed.CompleteOverdue(today, time.Now())
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, booking.StatusCompleted, confirmed.Status())

	running := withStatus(booking.StatusInProgress, "2030-01-05", "2030-01-10")
	done, err = running.CompleteOverdue(today, time.Now())
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, booking.StatusInProgress, running.Status())

	pending := withStatus(booking.StatusPending, "2030-01-01", "2030-01-02")
	done, err = pending.CompleteOverdue(today, time.Now())
	require.NoError(t, err)
	assert.False(t, done)
}

func TestParseStatus(t *testing.T) {
	st, err := booking.ParseStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusInProgress, st)
	assert.True(t, st.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())

	_, err = booking.ParseStatus("done")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func withStatus(st booking.Status, rental, ret string) *booking.Booking {
	now := time.Now()
	return booking.ReconstructBooking(
		uuid.New(),
		booking.ReconstructCustomer("Jordan Rivera", "jordan@example.com", "+15128675309"),
		catalog.MachineSingle,
		catalog.Capacity15,
		[]string{"margarita"},
		calendar.MustParse(rental),
		calendar.MustParse(ret),
		booking.Address{},
		st,
		pricing.Breakdown{},
		booking.Notes{},
		nil, nil,
		now, now,
	)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain(newFactory(), nil)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				assert.True(t, errs.Is(err, c.errIs), "want %v, got %v", c.errIs, err)
			}
		})
	}
}
