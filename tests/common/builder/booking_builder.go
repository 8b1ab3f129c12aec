//go:build unit || e2e

package builder

import (
	"time"

	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/pricing"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/pkg/calendar"
)

type BookingBuilder struct {
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	MachineType      string
	Capacity         int
	Mixers           []string
	RentalDate       string
	ReturnDate       string
	EventAddress     string
	Notes            string
	PaymentReference *string
	IdempotencyKey   *string
}

func NewBookingBuilder() *BookingBuilder {
	rental := calendar.FromTime(time.Now().AddDate(0, 1, 0))
	return &BookingBuilder{
		CustomerName:  "Jordan Rivera",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "512-867-5309",
		MachineType:   "double",
		Capacity:      30,
		Mixers:        []string{"margarita", "pina-colada"},
		RentalDate:    rental.String(),
		ReturnDate:    rental.AddDays(1).String(),
		EventAddress:  "1200 Barton Springs Rd, Austin, TX",
		Notes:         "Gate code 1234",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildRequest() booking.Request {
	return booking.Request{
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		MachineType:      b.MachineType,
		Capacity:         b.Capacity,
		Mixers:           b.Mixers,
		RentalDate:       b.RentalDate,
		ReturnDate:       b.ReturnDate,
		EventAddress:     b.EventAddress,
		Notes:            b.Notes,
		PaymentReference: b.PaymentReference,
		IdempotencyKey:   b.IdempotencyKey,
	}
}

func (b *BookingBuilder) BuildDomain(f *booking.Factory, overrides *pricing.Overrides) (*booking.Booking, error) {
	return f.CreateBooking(b.BuildRequest(), overrides)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		MachineType:      b.MachineType,
		Capacity:         b.Capacity,
		Mixers:           b.Mixers,
		RentalDate:       b.RentalDate,
		ReturnDate:       b.ReturnDate,
		EventAddress:     b.EventAddress,
		Notes:            b.Notes,
		PaymentReference: b.PaymentReference,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithMachine(machineType string, capacity int) *BookingBuilder {
	b.MachineType = machineType
	b.Capacity = capacity
	return b
}

func (b *BookingBuilder) WithMixers(mixers ...string) *BookingBuilder {
	b.Mixers = mixers
	return b
}

func (b *BookingBuilder) WithDates(rental, ret string) *BookingBuilder {
	b.RentalDate = rental
	b.ReturnDate = ret
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithIdempotencyKey(key string) *BookingBuilder {
	b.IdempotencyKey = &key
	return b
}
