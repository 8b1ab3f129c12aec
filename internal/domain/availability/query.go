package availability

import (
	"party-rental/internal/domain/catalog"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
)

// Query asks whether one machine tier is free on one day.
type Query struct {
	MachineType catalog.MachineType
	Capacity    catalog.Capacity
	Date        calendar.Date
}

// ParseQuery validates raw request values. Every failure is an invalid input.
func ParseQuery(machineType string, capacity int, date string) (Query, error) {
	mt, err := catalog.ParseMachineType(machineType)
	if err != nil {
		return Query{}, err
	}
	c, err := catalog.ParseCapacity(capacity)
	if err != nil {
		return Query{}, err
	}
	d, err := calendar.Parse(date)
	if err != nil {
		return Query{}, errs.Invalid(err)
	}
	return Query{MachineType: mt, Capacity: c, Date: d}, nil
}
