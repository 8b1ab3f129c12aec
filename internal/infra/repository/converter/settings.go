package converter

import (
	"encoding/json"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/pgconv"
)

// PricingDoc is the JSONB shape of settings.pricing. The same document is
// cached in Redis.
type PricingDoc struct {
	DeliveryFee       *float64                   `json:"deliveryFee,omitempty"`
	SalesTaxRate      *float64                   `json:"salesTaxRate,omitempty"`
	ProcessingFeeRate *float64                   `json:"processingFeeRate,omitempty"`
	Machines          map[string]MachinePriceDoc `json:"machines,omitempty"`
	Mixers            map[string]MixerPriceDoc   `json:"mixers,omitempty"`
}

type MachinePriceDoc struct {
	BasePrice *float64 `json:"basePrice,omitempty"`
}

type MixerPriceDoc struct {
	Price *float64 `json:"price,omitempty"`
}

func PricingToDoc(o pricing.Overrides) PricingDoc {
	doc := PricingDoc{
		DeliveryFee:       o.DeliveryFee,
		SalesTaxRate:      o.SalesTaxRate,
		ProcessingFeeRate: o.ProcessingFeeRate,
	}
	if len(o.Machines) > 0 {
		doc.Machines = make(map[string]MachinePriceDoc, len(o.Machines))
		for t, m := range o.Machines {
			doc.Machines[t.String()] = MachinePriceDoc{BasePrice: m.BasePrice}
		}
	}
	if len(o.Mixers) > 0 {
		doc.Mixers = make(map[string]MixerPriceDoc, len(o.Mixers))
		for key, m := range o.Mixers {
			doc.Mixers[key] = MixerPriceDoc{Price: m.Price}
		}
	}
	return doc
}

// PricingFromDoc drops entries for machine types that no longer exist.
func PricingFromDoc(doc PricingDoc) pricing.Overrides {
	o := pricing.Overrides{
		DeliveryFee:       doc.DeliveryFee,
		SalesTaxRate:      doc.SalesTaxRate,
		ProcessingFeeRate: doc.ProcessingFeeRate,
	}
	if len(doc.Machines) > 0 {
		o.Machines = make(map[catalog.MachineType]pricing.MachineOverride, len(doc.Machines))
		for key, m := range doc.Machines {
			t, err := catalog.ParseMachineType(key)
			if err != nil {
				continue
			}
			o.Machines[t] = pricing.MachineOverride{BasePrice: m.BasePrice}
		}
	}
	if len(doc.Mixers) > 0 {
		o.Mixers = make(map[string]pricing.MixerOverride, len(doc.Mixers))
		for key, m := range doc.Mixers {
			o.Mixers[key] = pricing.MixerOverride{Price: m.Price}
		}
	}
	return o
}

func SettingsToUpsertParams(s *settings.Settings) (sqlstore.UpsertSettingsParams, error) {
	payload, err := json.Marshal(PricingToDoc(s.Pricing))
	if err != nil {
		return sqlstore.UpsertSettingsParams{}, errs.Wrap(err, "failed to encode pricing overrides")
	}

	return sqlstore.UpsertSettingsParams{
		ID:                  1,
		Pricing:             payload,
		DeliveryWindowStart: clockTimeToPgtype(s.DeliveryWindow.Start),
		DeliveryWindowEnd:   clockTimeToPgtype(s.DeliveryWindow.End),
		UpdatedBy:           pgconv.UUIDPtrToPgtype(s.UpdatedBy),
		UpdatedAt:           pgconv.TimeToPgtype(s.UpdatedAt),
	}, nil
}

func SettingsFromRow(row sqlstore.Settings) (*settings.Settings, error) {
	var doc PricingDoc
	if len(row.Pricing) > 0 {
		if err := json.Unmarshal(row.Pricing, &doc); err != nil {
			return nil, errs.Wrap(err, "failed to decode pricing overrides")
		}
	}

	start, err := clockTimeFromPgtype(row.DeliveryWindowStart)
	if err != nil {
		return nil, errs.Wrap(err, "delivery window start")
	}
	end, err := clockTimeFromPgtype(row.DeliveryWindowEnd)
	if err != nil {
		return nil, errs.Wrap(err, "delivery window end")
	}

	return &settings.Settings{
		Pricing:        PricingFromDoc(doc),
		DeliveryWindow: settings.DeliveryWindow{Start: start, End: end},
		UpdatedBy:      pgconv.UUIDPtrFromPgtype(row.UpdatedBy),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
