package response

import (
	"time"

	"party-rental/internal/usecase/queries"
)

type SettingsResponse struct {
	Pricing        PricingResponse        `json:"pricing"`
	DeliveryWindow DeliveryWindowResponse `json:"deliveryWindow"`
	UpdatedBy      *string                `json:"updatedBy,omitempty"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type PricingResponse struct {
	DeliveryFee       *float64                          `json:"deliveryFee,omitempty"`
	SalesTaxRate      *float64                          `json:"salesTaxRate,omitempty"`
	ProcessingFeeRate *float64                          `json:"processingFeeRate,omitempty"`
	Machines          map[string]MachineOverrideResponse `json:"machines"`
	Mixers            map[string]MixerOverrideResponse   `json:"mixers"`
}

type MachineOverrideResponse struct {
	BasePrice *float64 `json:"basePrice,omitempty"`
}

type MixerOverrideResponse struct {
	Price *float64 `json:"price,omitempty"`
}

type DeliveryWindowResponse struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

func FromSettingsView(v *queries.SettingsView) SettingsResponse {
	p := v.Pricing
	resp := SettingsResponse{
		Pricing: PricingResponse{
			DeliveryFee:       p.DeliveryFee,
			SalesTaxRate:      p.SalesTaxRate,
			ProcessingFeeRate: p.ProcessingFeeRate,
			Machines:          make(map[string]MachineOverrideResponse, len(p.Machines)),
			Mixers:            make(map[string]MixerOverrideResponse, len(p.Mixers)),
		},
		DeliveryWindow: DeliveryWindowResponse{
			Start: v.DeliveryWindowStart,
			End:   v.DeliveryWindowEnd,
		},
		UpdatedAt: v.UpdatedAt,
	}
	for t, m := range p.Machines {
		resp.Pricing.Machines[t.String()] = MachineOverrideResponse{BasePrice: m.BasePrice}
	}
	for key, m := range p.Mixers {
		resp.Pricing.Mixers[key] = MixerOverrideResponse{Price: m.Price}
	}
	if v.UpdatedBy != nil {
		by := v.UpdatedBy.String()
		resp.UpdatedBy = &by
	}
	return resp
}
