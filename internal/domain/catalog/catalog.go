// Package catalog defines the rentable machine packages, mixers and extras.
//
// Catalog data is fixed at deploy time. Admin price changes never touch it;
// they are layered on top by the pricing package.
package catalog

import (
	"slices"

	"github.com/jinzhu/copier"
)

type MachinePackage struct {
	Type        MachineType
	Capacity    Capacity
	Name        string
	Description string
	BasePrice   float64
	MaxMixers   int
	Features    []string
}

type MixerDetails struct {
	Label       string
	Description string
	Price       float64
}

type Extra struct {
	Key         string
	Name        string
	Description string
	Price       float64
}

type Catalog struct {
	Machines map[MachineType]MachinePackage
	Mixers   map[string]MixerDetails
	Extras   []Extra
}

var machineOrder = []MachineType{MachineSingle, MachineDouble, MachineTriple}

var mixerOrder = []string{
	MixerNonAlcoholic.String(),
	MixerMargarita.String(),
	MixerPinaColada.String(),
	MixerStrawberryDaiquiri.String(),
}

// Default returns a fresh copy of the shipped catalog.
func Default() *Catalog {
	return &Catalog{
		Machines: map[MachineType]MachinePackage{
			MachineSingle: {
				Type:        MachineSingle,
				Capacity:    Capacity15,
				Name:        "Single Tank Machine",
				Description: "One 15 liter tank, great for backyard parties.",
				BasePrice:   124.95,
				MaxMixers:   1,
				Features: []string{
					"15 liter tank",
					"Serves roughly 30 guests",
					"Delivery, setup and pickup included",
				},
			},
			MachineDouble: {
				Type:        MachineDouble,
				Capacity:    Capacity30,
				Name:        "Double Tank Machine",
				Description: "Two 15 liter tanks so you can pour two flavors.",
				BasePrice:   169.95,
				MaxMixers:   2,
				Features: []string{
					"Two 15 liter tanks",
					"Serves roughly 60 guests",
					"Two flavors at once",
					"Delivery, setup and pickup included",
				},
			},
			MachineTriple: {
				Type:        MachineTriple,
				Capacity:    Capacity45,
				Name:        "Triple Tank Machine",
				Description: "Three 15 liter tanks for weddings and large events.",
				BasePrice:   219.95,
				MaxMixers:   3,
				Features: []string{
					"Three 15 liter tanks",
					"Serves 60+ guests",
					"Three flavors at once",
					"Delivery, setup and pickup included",
				},
			},
		},
		Mixers: map[string]MixerDetails{
			MixerNonAlcoholic.String(): {
				Label:       "Non-Alcoholic",
				Description: "Kid friendly fruit slush base.",
				Price:       14.95,
			},
			MixerMargarita.String(): {
				Label:       "Margarita",
				Description: "Classic lime margarita mix.",
				Price:       19.95,
			},
			MixerPinaColada.String(): {
				Label:       "Piña Colada",
				Description: "Pineapple and coconut.",
				Price:       24.95,
			},
			MixerStrawberryDaiquiri.String(): {
				Label:       "Strawberry Daiquiri",
				Description: "Strawberry and lime.",
				Price:       24.95,
			},
		},
		Extras: []Extra{
			{Key: "salt-rimmer", Name: "Salt & Sugar Rimmer", Description: "Rimmer tray with salt and sugar.", Price: 9.95},
			{Key: "cups-100", Name: "Cups (100 pack)", Description: "12 oz clear cups.", Price: 14.95},
			{Key: "extra-day", Name: "Extra Day", Description: "Keep the machine one more day.", Price: 49.95},
		},
	}
}

func (c *Catalog) Machine(t MachineType) (MachinePackage, bool) {
	p, ok := c.Machines[t]
	return p, ok
}

func (c *Catalog) Mixer(key string) (MixerDetails, bool) {
	m, ok := c.Mixers[key]
	return m, ok
}

// Packages lists machine packages ordered by tier.
func (c *Catalog) Packages() []MachinePackage {
	out := make([]MachinePackage, 0, len(c.Machines))
	for _, t := range machineOrder {
		if p, ok := c.Machines[t]; ok {
			out = append(out, p)
		}
	}
	return out
}

// MixerKeys lists known mixers first in catalog order, then any others sorted.
func (c *Catalog) MixerKeys() []string {
	out := make([]string, 0, len(c.Mixers))
	var rest []string
	for _, k := range mixerOrder {
		if _, ok := c.Mixers[k]; ok {
			out = append(out, k)
		}
	}
	for k := range c.Mixers {
		if !slices.Contains(mixerOrder, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// Clone deep-copies the catalog so callers can adjust prices freely.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{}
	// plain data only; a deep copy of it cannot fail
	_ = copier.CopyWithOption(out, c, copier.Option{DeepCopy: true})
	return out
}
