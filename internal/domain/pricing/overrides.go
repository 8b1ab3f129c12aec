package pricing

import "party-rental/internal/domain/catalog"

// Overrides are admin adjustments layered over the catalog. A nil field means
// "use the default".
type Overrides struct {
	DeliveryFee       *float64
	SalesTaxRate      *float64
	ProcessingFeeRate *float64
	Machines          map[catalog.MachineType]MachineOverride
	Mixers            map[string]MixerOverride
}

type MachineOverride struct {
	BasePrice *float64
}

type MixerOverride struct {
	Price *float64
}

func (o *Overrides) machineBasePrice(t catalog.MachineType) *float64 {
	if o == nil {
		return nil
	}
	if m, ok := o.Machines[t]; ok {
		return m.BasePrice
	}
	return nil
}

func (o *Overrides) mixerPrice(key string) *float64 {
	if o == nil {
		return nil
	}
	if m, ok := o.Mixers[key]; ok {
		return m.Price
	}
	return nil
}

func (o *Overrides) deliveryFee() *float64 {
	if o == nil {
		return nil
	}
	return o.DeliveryFee
}

func (o *Overrides) salesTaxRate() *float64 {
	if o == nil {
		return nil
	}
	return o.SalesTaxRate
}

func (o *Overrides) processingFeeRate() *float64 {
	if o == nil {
		return nil
	}
	return o.ProcessingFeeRate
}
