package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, customer_name, customer_email, customer_phone, machine_type, capacity, mixers,
	rental_date, return_date, event_address, status,
	base_price, mixer_price, delivery_fee, sales_tax, processing_fee, total,
	notes, payment_reference, idempotency_key, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (Bookings, error) {
	var b Bookings
	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.MachineType,
		&b.Capacity,
		&b.Mixers,
		&b.RentalDate,
		&b.ReturnDate,
		&b.EventAddress,
		&b.Status,
		&b.BasePrice,
		&b.MixerPrice,
		&b.DeliveryFee,
		&b.SalesTax,
		&b.ProcessingFee,
		&b.Total,
		&b.Notes,
		&b.PaymentReference,
		&b.IdempotencyKey,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func collectBookings(rows pgx.Rows) ([]Bookings, error) {
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const createBooking = `
INSERT INTO bookings (` + bookingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

type CreateBookingParams = Bookings

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.MachineType,
		arg.Capacity,
		arg.Mixers,
		arg.RentalDate,
		arg.ReturnDate,
		arg.EventAddress,
		arg.Status,
		arg.BasePrice,
		arg.MixerPrice,
		arg.DeliveryFee,
		arg.SalesTax,
		arg.ProcessingFee,
		arg.Total,
		arg.Notes,
		arg.PaymentReference,
		arg.IdempotencyKey,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBookingStatus = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByID, id))
}

const getBookingByIDForUpdate = getBookingByID + ` FOR UPDATE`

func (q *Queries) GetBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIDForUpdate, id))
}

const getBookingByIdempotencyKey = `SELECT ` + bookingColumns + ` FROM bookings WHERE idempotency_key = $1`

func (q *Queries) GetBookingByIdempotencyKey(ctx context.Context, db DBTX, key string) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, getBookingByIdempotencyKey, key))
}

const listActiveBookingsOverlapping = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE machine_type = $1
  AND capacity = $2
  AND status = ANY($5::text[])
  AND rental_date <= $4
  AND return_date >= $3
ORDER BY rental_date`

type ListActiveBookingsOverlappingParams struct {
	MachineType string
	Capacity    int32
	From        pgtype.Date
	To          pgtype.Date
	Statuses    []string
}

func (q *Queries) ListActiveBookingsOverlapping(ctx context.Context, db DBTX, arg ListActiveBookingsOverlappingParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listActiveBookingsOverlapping,
		arg.MachineType,
		arg.Capacity,
		arg.From,
		arg.To,
		arg.Statuses,
	)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::date IS NULL OR return_date >= $2)
  AND ($3::date IS NULL OR rental_date <= $3)
  AND ($4::timestamptz IS NULL OR (created_at, id) < ($4, $5::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $6`

type ListBookingsParams struct {
	Status         pgtype.Text
	From           pgtype.Date
	To             pgtype.Date
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.Status,
		arg.From,
		arg.To,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

const listOverdueBookings = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE status IN ('confirmed', 'in-progress')
  AND return_date < $1
ORDER BY return_date
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (q *Queries) ListOverdueBookings(ctx context.Context, db DBTX, today pgtype.Date, limit int32) ([]Bookings, error) {
	rows, err := db.Query(ctx, listOverdueBookings, today, limit)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}
