// Package settings holds the single global business settings record.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidSettings = errs.Invalid(errors.New("invalid settings"))

type DeliveryWindow struct {
	Start *calendar.ClockTime
	End   *calendar.ClockTime
}

type Settings struct {
	Pricing        pricing.Overrides
	DeliveryWindow DeliveryWindow
	UpdatedBy      *uuid.UUID
	UpdatedAt      time.Time
}

// Default is the record used before an admin has saved anything.
func Default() *Settings {
	return &Settings{}
}

// Overrides returns the pricing overrides to thread into a quote.
func (s *Settings) Overrides() *pricing.Overrides {
	if s == nil {
		return nil
	}
	return &s.Pricing
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// Validate checks fees are not negative, rates are within [0, 1] and the
// delivery window starts before it ends. The returned error matches
// ErrInvalidSettings and unwraps to *ValidationError.
func (s *Settings) Validate() error {
	v := &ValidationError{}
	p := s.Pricing

	if p.DeliveryFee != nil && *p.DeliveryFee < 0 {
		v.add("pricing.deliveryFee", "must be 0 or more")
	}
	if p.SalesTaxRate != nil && (*p.SalesTaxRate < 0 || *p.SalesTaxRate > 1) {
		v.add("pricing.salesTaxRate", "must be between 0 and 1")
	}
	if p.ProcessingFeeRate != nil && (*p.ProcessingFeeRate < 0 || *p.ProcessingFeeRate > 1) {
		v.add("pricing.processingFeeRate", "must be between 0 and 1")
	}
	for t, m := range p.Machines {
		if !t.IsValid() {
			v.add("pricing.machines."+t.String(), "unknown machine type")
			continue
		}
		if m.BasePrice != nil && *m.BasePrice < 0 {
			v.add("pricing.machines."+t.String()+".basePrice", "must be 0 or more")
		}
	}
	for key, m := range p.Mixers {
		if strings.TrimSpace(key) == "" {
			v.add("pricing.mixers", "mixer key must not be empty")
			continue
		}
		if m.Price != nil && *m.Price < 0 {
			v.add("pricing.mixers."+key+".price", "must be 0 or more")
		}
	}

	w := s.DeliveryWindow
	if w.Start != nil && w.End != nil && !w.Start.Before(*w.End) {
		v.add("deliveryWindow", fmt.Sprintf("start %s must be before end %s", w.Start, w.End))
	}

	if len(v.Fields) == 0 {
		return nil
	}
	return errs.Invalid(errs.Mark(v, ErrInvalidSettings))
}

// MachineTypes lists the tiers that carry a price override.
func (s *Settings) MachineTypes() []catalog.MachineType {
	var out []catalog.MachineType
	for _, t := range []catalog.MachineType{catalog.MachineSingle, catalog.MachineDouble, catalog.MachineTriple} {
		if _, ok := s.Pricing.Machines[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
