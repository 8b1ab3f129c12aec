package repository

import (
	"context"

	"party-rental/internal/domain/booking"
	"party-rental/internal/infra"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlstore.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlstore.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps an exclusion violation to KindConflict: another active booking
// already holds the tier for an overlapping day.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b))
	if err != nil {
		switch {
		case pgconv.IsExclusionViolation(err):
			return infra.WrapRepoErr("booking overlaps an active booking", err, infra.KindConflict)
		case pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr("booking idempotency key already used", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, converter.BookingToStatusParams(b))
	if err != nil {
		if pgconv.IsExclusionViolation(err) {
			return infra.WrapRepoErr("booking overlaps an active booking", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
