package queries

import (
	"context"

	"party-rental/internal/domain/booking"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingListFilter struct {
	Status *booking.Status
	// From and To keep bookings whose rental period touches the range.
	From  *calendar.Date
	To    *calendar.Date
	After *Cursor
	Limit int
}

type BookingListInput struct {
	Status string
	From   string
	To     string
	After  string
	Limit  int
}

type BookingPage struct {
	Items      []*BookingView
	NextCursor *string
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, filter BookingListFilter) ([]*booking.Booking, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, in BookingListInput) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, in BookingListInput) (*BookingPage, error) {
	filter, err := parseBookingListInput(in)
	if err != nil {
		return nil, err
	}

	// one extra row tells whether another page exists
	limit := filter.Limit
	filter.Limit = limit + 1

	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &BookingPage{Items: make([]*BookingView, 0, min(len(rows), limit))}
	for i, b := range rows {
		if i == limit {
			last := rows[limit-1]
			next := EncodeAfterCursor(last.CreatedAt(), last.ID())
			page.NextCursor = &next
			break
		}
		page.Items = append(page.Items, NewBookingView(b))
	}
	return page, nil
}

func parseBookingListInput(in BookingListInput) (BookingListFilter, error) {
	filter := BookingListFilter{Limit: ValidateLimit(in.Limit)}

	if in.Status != "" {
		status, err := booking.ParseStatus(in.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if in.From != "" {
		d, err := calendar.Parse(in.From)
		if err != nil {
			return filter, errs.Invalid(errs.Wrap(err, "from"))
		}
		filter.From = &d
	}
	if in.To != "" {
		d, err := calendar.Parse(in.To)
		if err != nil {
			return filter, errs.Invalid(errs.Wrap(err, "to"))
		}
		filter.To = &d
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, errs.Invalid(errs.New("to must be on or after from"))
	}

	after, err := DecodeAfterCursor(in.After)
	if err != nil {
		return filter, err
	}
	filter.After = after
	return filter, nil
}
