package readstore

import (
	"context"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/pgconv"
	"party-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	GetBookingByIdempotencyKey(ctx context.Context, db sqlstore.DBTX, key string) (sqlstore.Bookings, error)
	ListActiveBookingsOverlapping(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveBookingsOverlappingParams) ([]sqlstore.Bookings, error)
	ListBookings(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListBookingsParams) ([]sqlstore.Bookings, error)
	ListOverdueBookings(ctx context.Context, db sqlstore.DBTX, today pgtype.Date, limit int32) ([]sqlstore.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlstore.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	return r.one(row, err)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *BookingReadStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	return r.one(row, err)
}

func (r *BookingReadStore) FindByIdempotencyKey(ctx context.Context, key string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIdempotencyKey(ctx, r.db, key)
	return r.one(row, err)
}

func (r *BookingReadStore) one(row sqlstore.Bookings, err error) (*booking.Booking, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

// ListActiveOverlapping returns active bookings of one tier touching [from, to].
func (r *BookingReadStore) ListActiveOverlapping(
	ctx context.Context,
	machineType catalog.MachineType,
	capacity catalog.Capacity,
	from, to calendar.Date,
) ([]availability.Reservation, error) {
	active := booking.ActiveStatuses()
	statuses := make([]string, len(active))
	for i, s := range active {
		statuses[i] = s.String()
	}

	rows, err := r.queries.ListActiveBookingsOverlapping(ctx, r.db, sqlstore.ListActiveBookingsOverlappingParams{
		MachineType: machineType.String(),
		Capacity:    int32(capacity.Int()),
		From:        pgconv.DateToPgtype(from),
		To:          pgconv.DateToPgtype(to),
		Statuses:    statuses,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}

	reservations := make([]availability.Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, availability.Reservation{
			MachineType: catalog.MachineType(row.MachineType),
			Capacity:    catalog.Capacity(row.Capacity),
			Status:      booking.Status(row.Status),
			RentalDate:  pgconv.DateFromPgtype(row.RentalDate),
			ReturnDate:  pgconv.DateFromPgtype(row.ReturnDate),
		})
	}
	return reservations, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingListFilter) ([]*booking.Booking, error) {
	params := sqlstore.ListBookingsParams{
		From:  pgconv.DatePtrToPgtype(filter.From),
		To:    pgconv.DatePtrToPgtype(filter.To),
		Limit: int32(filter.Limit),
	}
	if filter.Status != nil {
		params.Status = pgconv.StringToPgtype(filter.Status.String())
	}
	if filter.After != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(filter.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(filter.After.ID)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	items, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}
	return items, nil
}

// ListOverdue skips rows another sweep already holds.
func (r *BookingReadStore) ListOverdue(ctx context.Context, today calendar.Date, limit int) ([]*booking.Booking, error) {
	rows, err := r.queries.ListOverdueBookings(ctx, r.db, pgconv.DateToPgtype(today), int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue bookings", err)
	}
	items, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bookings", err)
	}
	return items, nil
}
