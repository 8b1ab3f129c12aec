package queries

import (
	"context"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
)

// SettingsReader returns the settings in force for the current request.
type SettingsReader interface {
	Current(ctx context.Context) (*settings.Settings, error)
}

type CatalogView struct {
	Packages    []catalog.MachinePackage
	Mixers      []MixerView
	Extras      []catalog.Extra
	DeliveryFee float64
}

type MixerView struct {
	Key string
	catalog.MixerDetails
}

type QuoteInput struct {
	MachineType string
	Mixers      []string
}

type CatalogQueries interface {
	GetCatalog(ctx context.Context) (*CatalogView, error)
	Quote(ctx context.Context, in QuoteInput) (*PriceView, error)
}

type catalogQueriesImpl struct {
	settings   SettingsReader
	calculator *pricing.Calculator
}

func NewCatalogQueries(settings SettingsReader, calculator *pricing.Calculator) CatalogQueries {
	return &catalogQueriesImpl{
		settings:   settings,
		calculator: calculator,
	}
}

// GetCatalog shows prices with the admin overrides applied.
func (q *catalogQueriesImpl) GetCatalog(ctx context.Context) (*CatalogView, error) {
	s, err := q.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	overrides := s.Overrides()
	resolved := q.calculator.ResolvedCatalog(overrides)

	view := &CatalogView{
		Packages:    resolved.Packages(),
		Extras:      resolved.Extras,
		DeliveryFee: pricing.ResolvedDeliveryFee(overrides),
	}
	for _, key := range resolved.MixerKeys() {
		details, _ := resolved.Mixer(key)
		view.Mixers = append(view.Mixers, MixerView{Key: key, MixerDetails: details})
	}
	return view, nil
}

func (q *catalogQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*PriceView, error) {
	machineType, err := catalog.ParseMachineType(in.MachineType)
	if err != nil {
		return nil, err
	}

	s, err := q.settings.Current(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := q.calculator.Calculate(machineType, in.Mixers, s.Overrides())
	if err != nil {
		return nil, err
	}
	view := NewPriceView(breakdown)
	return &view, nil
}
