// Package booking models a customer's machine rental.
package booking

import (
	"errors"
	"slices"
	"time"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errs.Invalid(errors.New("invalid booking status"))
	ErrInvalidStatusTransition = errs.Mark(errors.New("booking status cannot change that way"), errs.ErrConflict)
	ErrCapacityMismatch        = errs.Invalid(errors.New("capacity does not match machine type"))
	ErrTooManyMixers           = errs.Invalid(errors.New("too many mixers for machine type"))
	ErrReturnBeforeRental      = errs.Invalid(errors.New("return date must be on or after rental date"))
	ErrRentalDateInPast        = errs.Invalid(errors.New("rental date cannot be in the past"))
	ErrRentalTooLong           = errs.Invalid(errors.New("rental period exceeds the maximum number of days"))
	ErrNotAvailable            = errs.Mark(errors.New("machine is not available for the selected dates"), errs.ErrUnavailable)
	ErrBookingNotFound         = errs.Mark(errors.New("booking not found"), errs.ErrNotFound)
)

type Booking struct {
	id               uuid.UUID
	customer         Customer
	machineType      catalog.MachineType
	capacity         catalog.Capacity
	mixers           []string
	rentalDate       calendar.Date
	returnDate       calendar.Date
	eventAddress     Address
	status           Status
	price            pricing.Breakdown
	notes            Notes
	paymentReference *string
	idempotencyKey   *string
	createdAt        time.Time
	updatedAt        time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	customer Customer,
	machineType catalog.MachineType,
	capacity catalog.Capacity,
	mixers []string,
	rentalDate, returnDate calendar.Date,
	eventAddress Address,
	status Status,
	price pricing.Breakdown,
	notes Notes,
	paymentReference, idempotencyKey *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		customer:         customer,
		machineType:      machineType,
		capacity:         capacity,
		mixers:           mixers,
		rentalDate:       rentalDate,
		returnDate:       returnDate,
		eventAddress:     eventAddress,
		status:           status,
		price:            price,
		notes:            notes,
		paymentReference: paymentReference,
		idempotencyKey:   idempotencyKey,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ChangeStatus moves the booking along the status graph.
func (b *Booking) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidStatusTransition, "%s -> %s", b.status, next)
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// IsOverdue reports whether an active rental should already have been returned.
func (b *Booking) IsOverdue(today calendar.Date) bool {
	return (b.status == StatusConfirmed || b.status == StatusInProgress) && b.returnDate.Before(today)
}

// CompleteOverdue walks an overdue rental through in-progress to completed.
func (b *Booking) CompleteOverdue(today calendar.Date, now time.Time) (bool, error) {
	if !b.IsOverdue(today) {
		return false, nil
	}
	if b.status == StatusConfirmed {
		if err := b.ChangeStatus(StatusInProgress, now); err != nil {
			return false, err
		}
	}
	if err := b.ChangeStatus(StatusCompleted, now); err != nil {
		return false, err
	}
	return true, nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Days is the number of calendar days the machine is out.
func (b *Booking) Days() int {
	return b.rentalDate.DaysUntil(b.returnDate) + 1
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) Customer() Customer               { return b.customer }
func (b *Booking) MachineType() catalog.MachineType { return b.machineType }
func (b *Booking) Capacity() catalog.Capacity       { return b.capacity }
func (b *Booking) Mixers() []string                 { return slices.Clone(b.mixers) }
func (b *Booking) RentalDate() calendar.Date        { return b.rentalDate }
func (b *Booking) ReturnDate() calendar.Date        { return b.returnDate }
func (b *Booking) EventAddress() Address            { return b.eventAddress }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) Price() pricing.Breakdown         { return b.price }
func (b *Booking) Notes() Notes                     { return b.notes }
func (b *Booking) PaymentReference() *string        { return b.paymentReference }
func (b *Booking) IdempotencyKey() *string          { return b.idempotencyKey }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
