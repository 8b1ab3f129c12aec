// Package availability decides whether a machine tier can be rented on a day.
package availability

import (
	"party-rental/internal/domain/booking"
	"party-rental/internal/domain/catalog"
	"party-rental/internal/pkg/calendar"
)

type Reason string

const (
	ReasonBlackout Reason = "blackout"
	ReasonBooked   Reason = "booked"
)

// Reservation is an existing booking reduced to what the checker needs.
type Reservation struct {
	MachineType catalog.MachineType
	Capacity    catalog.Capacity
	Status      booking.Status
	RentalDate  calendar.Date
	ReturnDate  calendar.Date
}

func (r Reservation) blocks(q Query) bool {
	return r.Status.IsActive() &&
		r.MachineType == q.MachineType &&
		r.Capacity == q.Capacity &&
		q.Date.Within(r.RentalDate, r.ReturnDate)
}

type Result struct {
	Available bool
	Reason    Reason
}

// Check runs the blackout check first and only looks at reservations when the
// day is not blacked out.
func Check(q Query, blackouts []*BlackoutPeriod, reservations []Reservation) Result {
	for _, b := range blackouts {
		if b.Covers(q.Date) {
			return Result{Available: false, Reason: ReasonBlackout}
		}
	}
	for _, r := range reservations {
		if r.blocks(q) {
			return Result{Available: false, Reason: ReasonBooked}
		}
	}
	return Result{Available: true}
}

type RangeResult struct {
	Available bool
	Reason    Reason
	// Date is the first unavailable day.
	Date *calendar.Date
}

// CheckRange checks every day of the inclusive range [from, to].
func CheckRange(
	machineType catalog.MachineType,
	capacity catalog.Capacity,
	from, to calendar.Date,
	blackouts []*BlackoutPeriod,
	reservations []Reservation,
) RangeResult {
	for d := from; !d.After(to); d = d.AddDays(1) {
		res := Check(Query{MachineType: machineType, Capacity: capacity, Date: d}, blackouts, reservations)
		if !res.Available {
			day := d
			return RangeResult{Available: false, Reason: res.Reason, Date: &day}
		}
	}
	return RangeResult{Available: true}
}
