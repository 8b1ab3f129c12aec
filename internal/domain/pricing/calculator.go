// Package pricing computes rental quotes from the catalog and admin overrides.
package pricing

import (
	"math"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/pkg/patch"
)

const (
	DefaultDeliveryFee       = 20.0
	DefaultSalesTaxRate      = 0.0825
	DefaultProcessingFeeRate = 0.03
)

// Breakdown holds the quote components. Only Total is rounded.
type Breakdown struct {
	BasePrice     float64
	MixerPrice    float64
	DeliveryFee   float64
	SalesTax      float64
	ProcessingFee float64
	Total         float64
}

func (b Breakdown) Subtotal() float64 {
	return b.BasePrice + b.MixerPrice + b.DeliveryFee
}

type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// NewDefaultCalculator prices against catalog.Default().
func NewDefaultCalculator() *Calculator {
	return NewCalculator(catalog.Default())
}

// Calculate prices one machine with the given mixers. Duplicate mixers are
// charged again and unknown mixer keys cost nothing.
func (c *Calculator) Calculate(machineType catalog.MachineType, mixers []string, overrides *Overrides) (Breakdown, error) {
	pkg, ok := c.catalog.Machine(machineType)
	if !ok {
		return Breakdown{}, catalog.ErrInvalidMachineType
	}

	base := patch.First(pkg.BasePrice, overrides.machineBasePrice(machineType))

	var mixerTotal float64
	for _, key := range mixers {
		mixerTotal += c.mixerPrice(key, overrides)
	}

	delivery := patch.First(DefaultDeliveryFee, overrides.deliveryFee())
	taxRate := patch.First(DefaultSalesTaxRate, overrides.salesTaxRate())
	processingRate := patch.First(DefaultProcessingFeeRate, overrides.processingFeeRate())

	subtotal := base + mixerTotal + delivery
	salesTax := subtotal * taxRate
	processingFee := subtotal * processingRate

	return Breakdown{
		BasePrice:     base,
		MixerPrice:    mixerTotal,
		DeliveryFee:   delivery,
		SalesTax:      salesTax,
		ProcessingFee: processingFee,
		Total:         round2(subtotal + salesTax + processingFee),
	}, nil
}

func (c *Calculator) mixerPrice(key string, overrides *Overrides) float64 {
	if p := overrides.mixerPrice(key); p != nil {
		return *p
	}
	if m, ok := c.catalog.Mixer(key); ok {
		return m.Price
	}
	return 0
}

// ResolvedCatalog returns a copy of the catalog with override prices applied.
func (c *Calculator) ResolvedCatalog(overrides *Overrides) *catalog.Catalog {
	out := c.catalog.Clone()
	for t, pkg := range out.Machines {
		if p := overrides.machineBasePrice(t); p != nil {
			pkg.BasePrice = *p
			out.Machines[t] = pkg
		}
	}
	for key, m := range out.Mixers {
		if p := overrides.mixerPrice(key); p != nil {
			m.Price = *p
			out.Mixers[key] = m
		}
	}
	return out
}

// ResolvedDeliveryFee is the delivery fee a quote would charge.
func ResolvedDeliveryFee(overrides *Overrides) float64 {
	return patch.First(DefaultDeliveryFee, overrides.deliveryFee())
}

// round2 rounds to cents, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
