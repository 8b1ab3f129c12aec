//go:build unit

package queries

import (
	"context"
	"fmt"
	"testing"
	"time"

	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedBooking(createdAt time.Time) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(),
		booking.ReconstructCustomer("Jordan Rivera", "jordan@example.com", "+15128675309"),
		catalog.MachineDouble, catalog.Capacity(30), []string{"margarita"},
		calendar.MustParse("2026-07-04"), calendar.MustParse("2026-07-05"),
		booking.ReconstructAddress("1200 Barton Springs Rd"),
		booking.StatusPending,
		pricing.Breakdown{BasePrice: 169.95, Total: 230.0},
		booking.ReconstructNotes(""),
		nil, nil,
		createdAt, createdAt,
	)
}

func TestGetBookingByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		b := storedBooking(time.Now())
		repo := new(MockBookingViewRepo)
		repo.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

		got, err := NewBookingQueries(repo).GetByID(context.Background(), b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), got.ID)
		assert.Equal(t, "+15128675309", got.CustomerPhone)
		assert.Equal(t, 230.0, got.Price.Total)
	})

	t.Run("missing", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockBookingViewRepo)
		repo.On("FindByID", mock.Anything, id).
			Return(nil, infra.WrapRepoErr("booking not found", fmt.Errorf("no rows"), infra.KindNotFound))

		_, err := NewBookingQueries(repo).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestListBookings(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("next cursor points at the last returned row", func(t *testing.T) {
		rows := []*booking.Booking{
			storedBooking(base.Add(3 * time.Minute)),
			storedBooking(base.Add(2 * time.Minute)),
			storedBooking(base.Add(time.Minute)),
		}
		repo := new(MockBookingViewRepo)
		repo.On("List", mock.Anything, mock.MatchedBy(func(f BookingListFilter) bool {
			return f.Limit == 3 && f.Status != nil && *f.Status == booking.StatusPending && f.After == nil
		})).Return(rows, nil)

		page, err := NewBookingQueries(repo).List(context.Background(), BookingListInput{Status: "pending", Limit: 2})

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		require.NotNil(t, page.NextCursor)

		cursor, err := DecodeAfterCursor(*page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID(), cursor.ID)
		assert.True(t, rows[1].CreatedAt().Equal(cursor.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		repo := new(MockBookingViewRepo)
		repo.On("List", mock.Anything, mock.Anything).Return([]*booking.Booking{storedBooking(base)}, nil)

		page, err := NewBookingQueries(repo).List(context.Background(), BookingListInput{})

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Nil(t, page.NextCursor)
		repo.AssertCalled(t, "List", mock.Anything, mock.MatchedBy(func(f BookingListFilter) bool {
			return f.Limit == DefaultListLimit+1
		}))
	})

	t.Run("date range is passed through", func(t *testing.T) {
		repo := new(MockBookingViewRepo)
		repo.On("List", mock.Anything, mock.MatchedBy(func(f BookingListFilter) bool {
			return f.From != nil && f.From.String() == "2026-07-01" && f.To != nil && f.To.String() == "2026-07-31"
		})).Return([]*booking.Booking{}, nil)

		_, err := NewBookingQueries(repo).List(context.Background(), BookingListInput{From: "2026-07-01", To: "2026-07-31"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid filters", func(t *testing.T) {
		inputs := []BookingListInput{
			{Status: "archived"},
			{From: "July"},
			{From: "2026-07-31", To: "2026-07-01"},
			{After: "not-a-cursor"},
		}
		for _, in := range inputs {
			repo := new(MockBookingViewRepo)
			_, err := NewBookingQueries(repo).List(context.Background(), in)
			assert.True(t, errs.IsInvalidInput(err), "%+v", in)
			repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		}
	})
}
