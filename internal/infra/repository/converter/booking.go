package converter

import (
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlstore.CreateBookingParams {
	price := b.Price()
	customer := b.Customer()
	mixers := b.Mixers()
	if mixers == nil {
		mixers = []string{}
	}

	return sqlstore.CreateBookingParams{
		ID:               b.ID(),
		CustomerName:     customer.Name(),
		CustomerEmail:    customer.Email(),
		CustomerPhone:    customer.Phone(),
		MachineType:      b.MachineType().String(),
		Capacity:         int32(b.Capacity().Int()),
		Mixers:           mixers,
		RentalDate:       pgconv.DateToPgtype(b.RentalDate()),
		ReturnDate:       pgconv.DateToPgtype(b.ReturnDate()),
		EventAddress:     b.EventAddress().String(),
		Status:           b.Status().String(),
		BasePrice:        price.BasePrice,
		MixerPrice:       price.MixerPrice,
		DeliveryFee:      price.DeliveryFee,
		SalesTax:         price.SalesTax,
		ProcessingFee:    price.ProcessingFee,
		Total:            price.Total,
		Notes:            b.Notes().String(),
		PaymentReference: pgconv.StringPtrToPgtype(b.PaymentReference()),
		IdempotencyKey:   pgconv.StringPtrToPgtype(b.IdempotencyKey()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking) sqlstore.UpdateBookingStatusParams {
	return sqlstore.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow fails only when the row holds values the schema checks
// should have rejected.
func BookingFromRow(row sqlstore.Bookings) (*booking.Booking, error) {
	machineType, err := catalog.ParseMachineType(row.MachineType)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	capacity, err := catalog.ParseCapacity(int(row.Capacity))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	price := pricing.Breakdown{
		BasePrice:     row.BasePrice,
		MixerPrice:    row.MixerPrice,
		DeliveryFee:   row.DeliveryFee,
		SalesTax:      row.SalesTax,
		ProcessingFee: row.ProcessingFee,
		Total:         row.Total,
	}

	return booking.ReconstructBooking(
		row.ID,
		booking.ReconstructCustomer(row.CustomerName, row.CustomerEmail, row.CustomerPhone),
		machineType,
		capacity,
		row.Mixers,
		pgconv.DateFromPgtype(row.RentalDate),
		pgconv.DateFromPgtype(row.ReturnDate),
		booking.ReconstructAddress(row.EventAddress),
		status,
		price,
		booking.ReconstructNotes(row.Notes),
		pgconv.StringPtrFromPgtype(row.PaymentReference),
		pgconv.StringPtrFromPgtype(row.IdempotencyKey),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlstore.Bookings) ([]*booking.Booking, error) {
	items := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}
