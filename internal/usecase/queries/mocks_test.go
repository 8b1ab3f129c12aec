//go:build unit

package queries

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBlackoutReader struct {
	mock.Mock
}

func (m *MockBlackoutReader) ListCovering(ctx context.Context, from, to calendar.Date) ([]*availability.BlackoutPeriod, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*availability.BlackoutPeriod), args.Error(1)
}

func (m *MockBlackoutReader) List(ctx context.Context, from, to *calendar.Date) ([]*availability.BlackoutPeriod, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*availability.BlackoutPeriod), args.Error(1)
}

type MockReservationReader struct {
	mock.Mock
}

func (m *MockReservationReader) ListActiveOverlapping(ctx context.Context, machineType catalog.MachineType, capacity catalog.Capacity, from, to calendar.Date) ([]availability.Reservation, error) {
	args := m.Called(ctx, machineType, capacity, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.Reservation), args.Error(1)
}

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Current(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

type MockBookingViewRepo struct {
	mock.Mock
}

func (m *MockBookingViewRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingViewRepo) List(ctx context.Context, filter BookingListFilter) ([]*booking.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}
