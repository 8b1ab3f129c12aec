package request

import (
	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
)

type UpdateSettingsRequest struct {
	Pricing        PricingRequest         `json:"pricing"`
	DeliveryWindow *DeliveryWindowRequest `json:"deliveryWindow,omitempty"`
}

type PricingRequest struct {
	DeliveryFee       *float64                     `json:"deliveryFee,omitempty"`
	SalesTaxRate      *float64                     `json:"salesTaxRate,omitempty"`
	ProcessingFeeRate *float64                     `json:"processingFeeRate,omitempty"`
	Machines          map[string]MachinePriceInput `json:"machines,omitempty"`
	Mixers            map[string]MixerPriceInput   `json:"mixers,omitempty"`
}

type MachinePriceInput struct {
	BasePrice *float64 `json:"basePrice,omitempty"`
}

type MixerPriceInput struct {
	Price *float64 `json:"price,omitempty"`
}

type DeliveryWindowRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// ToDomain parses formats only. Range checks are left to settings.Validate.
func (r UpdateSettingsRequest) ToDomain() (*settings.Settings, error) {
	s := settings.Default()
	s.Pricing = pricing.Overrides{
		DeliveryFee:       r.Pricing.DeliveryFee,
		SalesTaxRate:      r.Pricing.SalesTaxRate,
		ProcessingFeeRate: r.Pricing.ProcessingFeeRate,
	}

	if len(r.Pricing.Machines) > 0 {
		s.Pricing.Machines = make(map[catalog.MachineType]pricing.MachineOverride, len(r.Pricing.Machines))
		for key, m := range r.Pricing.Machines {
			t, err := catalog.ParseMachineType(key)
			if err != nil {
				return nil, errs.Wrapf(err, "pricing.machines.%s", key)
			}
			s.Pricing.Machines[t] = pricing.MachineOverride{BasePrice: m.BasePrice}
		}
	}
	if len(r.Pricing.Mixers) > 0 {
		s.Pricing.Mixers = make(map[string]pricing.MixerOverride, len(r.Pricing.Mixers))
		for key, m := range r.Pricing.Mixers {
			s.Pricing.Mixers[key] = pricing.MixerOverride{Price: m.Price}
		}
	}

	if r.DeliveryWindow != nil {
		start, err := parseClockTime(r.DeliveryWindow.Start, "deliveryWindow.start")
		if err != nil {
			return nil, err
		}
		end, err := parseClockTime(r.DeliveryWindow.End, "deliveryWindow.end")
		if err != nil {
			return nil, err
		}
		s.DeliveryWindow = settings.DeliveryWindow{Start: start, End: end}
	}
	return s, nil
}

func parseClockTime(s *string, field string) (*calendar.ClockTime, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := calendar.ParseClockTime(*s)
	if err != nil {
		return nil, errs.Invalid(errs.Wrap(err, field))
	}
	return &t, nil
}
