//go:build unit

package commands

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/usecase/shared"
	"party-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testNow    = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	rentalDay  = calendar.MustParse("2026-07-04")
	returnDay  = calendar.MustParse("2026-07-05")
	errRepoNot = infra.WrapRepoErr("not found", nil, infra.KindNotFound)
)

func newBookingCommandsForTest(uow *fakeUoW) (BookingCommands, *booking.Factory) {
	clk := clock.NewMockClock(testNow)
	f := booking.NewFactory(clk, pricing.NewDefaultCalculator(), catalog.Default(), time.UTC)
	return NewBookingCommands(uow, f, clk), f
}

func bookingRequest() *builder.BookingBuilder {
	return builder.NewBookingBuilder().WithDates(rentalDay.String(), returnDay.String())
}

func expectFreeCalendar(reads *MockCommandReads) {
	reads.On("Settings", mock.Anything).Return(settings.Default(), nil)
	reads.On("BlackoutsCovering", mock.Anything, rentalDay, returnDay).Return([]*availability.BlackoutPeriod{}, nil)
	reads.On("ActiveReservations", mock.Anything, catalog.MachineDouble, catalog.Capacity(30), rentalDay, returnDay).
		Return([]availability.Reservation{}, nil)
}

func TestCreateBooking(t *testing.T) {
	t.Run("success enqueues a confirmation", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		expectFreeCalendar(uow.tx.reads)
		uow.tx.bookings.On("Create", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil)
		uow.tx.notifications.On("CreateJob", mock.Anything, shared.NotificationKindEmail, shared.NotificationTopicBookingConfirmation,
			mock.MatchedBy(func(payload []byte) bool {
				var n shared.BookingNotification
				return json.Unmarshal(payload, &n) == nil && n.CustomerEmail == "jordan@example.com" && n.RentalDate == "2026-07-04"
			}), testNow).Return(nil)

		got, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), "")

		require.NoError(t, err)
		assert.False(t, got.IsReplayed)
		assert.Equal(t, "pending", got.Booking.Status)
		assert.Equal(t, "+15128675309", got.Booking.CustomerPhone)
		assert.InDelta(t, 261.27, got.Booking.Price.Total, 0.001)
		uow.tx.notifications.AssertExpectations(t)
		uow.tx.reads.AssertNotCalled(t, "BookingByIdempotencyKey", mock.Anything, mock.Anything)
	})

	t.Run("blackout blocks the insert", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		blackout := availability.ReconstructBlackoutPeriod(uuid.New(), returnDay, nil, availability.BlackoutFullDay,
			nil, nil, "holiday", uuid.New(), testNow, testNow)
		uow.tx.reads.On("Settings", mock.Anything).Return(settings.Default(), nil)
		uow.tx.reads.On("BlackoutsCovering", mock.Anything, rentalDay, returnDay).Return([]*availability.BlackoutPeriod{blackout}, nil)
		uow.tx.reads.On("ActiveReservations", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]availability.Reservation{}, nil)

		_, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), "")

		assert.ErrorIs(t, err, booking.ErrNotAvailable)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
		uow.tx.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("overlapping reservation blocks the insert", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		uow.tx.reads.On("Settings", mock.Anything).Return(settings.Default(), nil)
		uow.tx.reads.On("BlackoutsCovering", mock.Anything, rentalDay, returnDay).Return([]*availability.BlackoutPeriod{}, nil)
		uow.tx.reads.On("ActiveReservations", mock.Anything, catalog.MachineDouble, catalog.Capacity(30), rentalDay, returnDay).
			Return([]availability.Reservation{{
				MachineType: catalog.MachineDouble,
				Capacity:    30,
				Status:      booking.StatusConfirmed,
				RentalDate:  calendar.MustParse("2026-07-03"),
				ReturnDate:  rentalDay,
			}}, nil)

		_, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), "")

		assert.ErrorIs(t, err, booking.ErrNotAvailable)
		uow.tx.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("exclusion constraint maps to unavailable", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		expectFreeCalendar(uow.tx.reads)
		uow.tx.bookings.On("Create", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("booking overlaps", assert.AnError, infra.KindConflict))

		_, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), "")

		assert.ErrorIs(t, err, booking.ErrNotAvailable)
		uow.tx.notifications.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid request", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		uow.tx.reads.On("Settings", mock.Anything).Return(settings.Default(), nil)

		_, err := cmds.Create(context.Background(), bookingRequest().WithMachine("double", 45).BuildDTO(), "")

		assert.ErrorIs(t, err, booking.ErrCapacityMismatch)
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("replay returns the stored booking", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, f := newBookingCommandsForTest(uow)
		existing, err := bookingRequest().WithIdempotencyKey("key-1").BuildDomain(f, nil)
		require.NoError(t, err)
		uow.tx.reads.On("BookingByIdempotencyKey", mock.Anything, "key-1").Return(existing, nil)

		got, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), " key-1 ")

		require.NoError(t, err)
		assert.True(t, got.IsReplayed)
		assert.Equal(t, existing.ID(), got.Booking.ID)
		uow.tx.reads.AssertNotCalled(t, "Settings", mock.Anything)
	})

	t.Run("losing an idempotency race replays the winner", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, f := newBookingCommandsForTest(uow)
		winner, err := bookingRequest().WithIdempotencyKey("key-2").BuildDomain(f, nil)
		require.NoError(t, err)

		uow.tx.reads.On("BookingByIdempotencyKey", mock.Anything, "key-2").Return(nil, errRepoNot).Once()
		uow.tx.reads.On("BookingByIdempotencyKey", mock.Anything, "key-2").Return(winner, nil).Once()
		expectFreeCalendar(uow.tx.reads)
		uow.tx.bookings.On("Create", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("duplicate idempotency key", assert.AnError, infra.KindDuplicateKey))

		got, err := cmds.Create(context.Background(), bookingRequest().BuildDTO(), "key-2")

		require.NoError(t, err)
		assert.True(t, got.IsReplayed)
		assert.Equal(t, winner.ID(), got.Booking.ID)
	})
}

func TestChangeBookingStatus(t *testing.T) {
	newPending := func(t *testing.T, f *booking.Factory) *booking.Booking {
		t.Helper()
		b, err := bookingRequest().BuildDomain(f, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("pending to confirmed", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, f := newBookingCommandsForTest(uow)
		b := newPending(t, f)
		uow.tx.reads.On("BookingForUpdate", mock.Anything, b.ID()).Return(b, nil)
		uow.tx.bookings.On("UpdateStatus", mock.Anything, b).Return(nil)
		uow.tx.notifications.On("CreateJob", mock.Anything, shared.NotificationKindEmail, shared.NotificationTopicBookingStatus, mock.Anything, testNow).Return(nil)

		got, err := cmds.ChangeStatus(context.Background(), b.ID(), "confirmed")

		require.NoError(t, err)
		assert.Equal(t, "confirmed", got.Status)
		uow.tx.notifications.AssertExpectations(t)
	})

	t.Run("illegal transition", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, f := newBookingCommandsForTest(uow)
		b := newPending(t, f)
		uow.tx.reads.On("BookingForUpdate", mock.Anything, b.ID()).Return(b, nil)

		_, err := cmds.ChangeStatus(context.Background(), b.ID(), "completed")

		assert.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		uow.tx.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("unknown status", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)

		_, err := cmds.ChangeStatus(context.Background(), uuid.New(), "shipped")
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newBookingCommandsForTest(uow)
		id := uuid.New()
		uow.tx.reads.On("BookingForUpdate", mock.Anything, id).Return(nil, errRepoNot)

		_, err := cmds.ChangeStatus(context.Background(), id, "confirmed")
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	})
}

func TestCompleteOverdue(t *testing.T) {
	uow := newFakeUoW()
	cmds, _ := newBookingCommandsForTest(uow)

	stored := func(status booking.Status) *booking.Booking {
		return booking.ReconstructBooking(
			uuid.New(),
			booking.ReconstructCustomer("Jordan Rivera", "jordan@example.com", "+15128675309"),
			catalog.MachineSingle, catalog.Capacity15, nil,
			calendar.MustParse("2026-05-20"), calendar.MustParse("2026-05-21"),
			booking.ReconstructAddress("1200 Barton Springs Rd"),
			status, pricing.Breakdown{}, booking.ReconstructNotes(""),
			nil, nil, testNow, testNow,
		)
	}
	confirmed := stored(booking.StatusConfirmed)
	inProgress := stored(booking.StatusInProgress)

	today := calendar.MustParse("2026-06-01")
	uow.tx.reads.On("OverdueBookings", mock.Anything, today, overdueSweepBatch).
		Return([]*booking.Booking{confirmed, inProgress}, nil)
	uow.tx.bookings.On("UpdateStatus", mock.Anything, mock.Anything).Return(nil)

	n, err := cmds.CompleteOverdue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, booking.StatusCompleted, confirmed.Status())
	assert.Equal(t, booking.StatusCompleted, inProgress.Status())
	uow.tx.bookings.AssertNumberOfCalls(t, "UpdateStatus", 2)
}
