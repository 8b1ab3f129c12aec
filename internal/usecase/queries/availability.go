package queries

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/pkg/calendar"
)

type BlackoutCoverageReader interface {
	ListCovering(ctx context.Context, from, to calendar.Date) ([]*availability.BlackoutPeriod, error)
}

type ReservationReader interface {
	ListActiveOverlapping(ctx context.Context, machineType catalog.MachineType, capacity catalog.Capacity, from, to calendar.Date) ([]availability.Reservation, error)
}

type AvailabilityView struct {
	Available   bool
	MachineType string
	Capacity    int
	Date        calendar.Date
	Reason      *string
}

type AvailabilityQueries interface {
	Check(ctx context.Context, machineType string, capacity int, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	blackouts    BlackoutCoverageReader
	reservations ReservationReader
}

func NewAvailabilityQueries(blackouts BlackoutCoverageReader, reservations ReservationReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		blackouts:    blackouts,
		reservations: reservations,
	}
}

// Check only loads reservations when the day is not blacked out.
func (q *availabilityQueriesImpl) Check(ctx context.Context, machineType string, capacity int, date string) (*AvailabilityView, error) {
	query, err := availability.ParseQuery(machineType, capacity, date)
	if err != nil {
		return nil, err
	}

	blackouts, err := q.blackouts.ListCovering(ctx, query.Date, query.Date)
	if err != nil {
		return nil, err
	}

	result := availability.Check(query, blackouts, nil)
	if result.Available {
		reservations, err := q.reservations.ListActiveOverlapping(ctx, query.MachineType, query.Capacity, query.Date, query.Date)
		if err != nil {
			return nil, err
		}
		result = availability.Check(query, blackouts, reservations)
	}

	view := &AvailabilityView{
		Available:   result.Available,
		MachineType: query.MachineType.String(),
		Capacity:    query.Capacity.Int(),
		Date:        query.Date,
	}
	if !result.Available {
		reason := string(result.Reason)
		view.Reason = &reason
	}
	return view, nil
}
