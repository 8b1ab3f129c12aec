package booking

import (
	"strings"
	"time"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

// Request is a customer's booking form, unparsed.
type Request struct {
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

type Factory struct {
	Clock      clock.Clock
	Calculator *pricing.Calculator
	Catalog    *catalog.Catalog
	// Location decides which calendar day "today" is.
	Location *time.Location
	// MaxRentalDays caps returnDate - rentalDate + 1.
	MaxRentalDays int
}

const DefaultMaxRentalDays = 14

func NewFactory(clk clock.Clock, calc *pricing.Calculator, cat *catalog.Catalog, loc *time.Location) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:         clk,
		Calculator:    calc,
		Catalog:       cat,
		Location:      loc,
		MaxRentalDays: DefaultMaxRentalDays,
	}
}

// CreateBooking validates req and prices it. It does not check availability.
func (f *Factory) CreateBooking(req Request, overrides *pricing.Overrides) (*Booking, error) {
	customer, err := NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return nil, err
	}

	machineType, err := catalog.ParseMachineType(req.MachineType)
	if err != nil {
		return nil, err
	}
	capacity, err := catalog.ParseCapacity(req.Capacity)
	if err != nil {
		return nil, err
	}
	if catalog.CapacityFor(machineType) != capacity {
		return nil, ErrCapacityMismatch
	}

	pkg, ok := f.Catalog.Machine(machineType)
	if !ok {
		return nil, catalog.ErrInvalidMachineType
	}
	mixers := make([]string, 0, len(req.Mixers))
	for _, m := range req.Mixers {
		m = strings.TrimSpace(m)
		if m == "" {
			return nil, ErrInvalidMixerKey
		}
		mixers = append(mixers, m)
	}
	if len(mixers) > pkg.MaxMixers {
		return nil, ErrTooManyMixers
	}

	rentalDate, err := calendar.Parse(req.RentalDate)
	if err != nil {
		return nil, errs.Invalid(errs.Wrap(err, "rentalDate"))
	}
	returnDate := rentalDate
	if req.ReturnDate != "" {
		returnDate, err = calendar.Parse(req.ReturnDate)
		if err != nil {
			return nil, errs.Invalid(errs.Wrap(err, "returnDate"))
		}
	}
	if returnDate.Before(rentalDate) {
		return nil, ErrReturnBeforeRental
	}
	if rentalDate.Before(clock.Today(f.Clock, f.Location)) {
		return nil, ErrRentalDateInPast
	}
	if f.MaxRentalDays > 0 && rentalDate.DaysUntil(returnDate)+1 > f.MaxRentalDays {
		return nil, ErrRentalTooLong
	}

	address, err := NewAddress(req.EventAddress)
	if err != nil {
		return nil, err
	}
	notes, err := NewNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	price, err := f.Calculator.Calculate(machineType, mixers, overrides)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Booking{
		id:               uuid.New(),
		customer:         customer,
		machineType:      machineType,
		capacity:         capacity,
		mixers:           mixers,
		rentalDate:       rentalDate,
		returnDate:       returnDate,
		eventAddress:     address,
		status:           StatusPending,
		price:            price,
		notes:            notes,
		paymentReference: req.PaymentReference,
		idempotencyKey:   req.IdempotencyKey,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}
