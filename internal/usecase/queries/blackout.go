package queries

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
)

type BlackoutListReader interface {
	List(ctx context.Context, from, to *calendar.Date) ([]*availability.BlackoutPeriod, error)
}

type BlackoutQueries interface {
	List(ctx context.Context, from, to string) ([]*BlackoutView, error)
}

type blackoutQueriesImpl struct {
	reader BlackoutListReader
}

func NewBlackoutQueries(reader BlackoutListReader) BlackoutQueries {
	return &blackoutQueriesImpl{reader: reader}
}

// List accepts empty bounds as open ends.
func (q *blackoutQueriesImpl) List(ctx context.Context, from, to string) ([]*BlackoutView, error) {
	fromDate, err := parseOptionalDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate(to)
	if err != nil {
		return nil, err
	}

	periods, err := q.reader.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	views := make([]*BlackoutView, len(periods))
	for i, p := range periods {
		views[i] = NewBlackoutView(p)
	}
	return views, nil
}

func parseOptionalDate(s string) (*calendar.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := calendar.Parse(s)
	if err != nil {
		return nil, errs.Invalid(err)
	}
	return &d, nil
}
