//go:build unit

package settings_test

import (
	"errors"
	"testing"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockPtr(s string) *calendar.ClockTime {
	c := calendar.MustParseClockTime(s)
	return &c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		settings   settings.Settings
		wantFields []string
	}{
		{
			name:     "empty record",
			settings: settings.Settings{},
		},
		{
			name: "all fields valid",
			settings: settings.Settings{
				Pricing: pricing.Overrides{
					DeliveryFee:       patch.Ptr(0.0),
					SalesTaxRate:      patch.Ptr(1.0),
					ProcessingFeeRate: patch.Ptr(0.0),
					Machines: map[catalog.MachineType]pricing.MachineOverride{
						catalog.MachineSingle: {BasePrice: patch.Ptr(99.0)},
					},
					Mixers: map[string]pricing.MixerOverride{
						"margarita": {Price: patch.Ptr(18.0)},
					},
				},
				DeliveryWindow: settings.DeliveryWindow{Start: clockPtr("08:00"), End: clockPtr("18:00")},
			},
		},
		{
			name: "negative fees",
			settings: settings.Settings{
				Pricing: pricing.Overrides{
					DeliveryFee: patch.Ptr(-1.0),
					Machines: map[catalog.MachineType]pricing.MachineOverride{
						catalog.MachineDouble: {BasePrice: patch.Ptr(-5.0)},
					},
					Mixers: map[string]pricing.MixerOverride{
						"margarita": {Price: patch.Ptr(-0.01)},
					},
				},
			},
			wantFields: []string{
				"pricing.deliveryFee",
				"pricing.machines.double.basePrice",
				"pricing.mixers.margarita.price",
			},
		},
		{
			name: "rates out of range",
			settings: settings.Settings{
				Pricing: pricing.Overrides{
					SalesTaxRate:      patch.Ptr(1.01),
					ProcessingFeeRate: patch.Ptr(-0.1),
				},
			},
			wantFields: []string{"pricing.salesTaxRate", "pricing.processingFeeRate"},
		},
		{
			name: "unknown machine type",
			settings: settings.Settings{
				Pricing: pricing.Overrides{
					Machines: map[catalog.MachineType]pricing.MachineOverride{"quad": {}},
				},
			},
			wantFields: []string{"pricing.machines.quad"},
		},
		{
			name: "delivery window backwards",
			settings: settings.Settings{
				DeliveryWindow: settings.DeliveryWindow{Start: clockPtr("18:00"), End: clockPtr("08:00")},
			},
			wantFields: []string{"deliveryWindow"},
		},
		{
			name: "delivery window empty",
			settings: settings.Settings{
				DeliveryWindow: settings.DeliveryWindow{Start: clockPtr("09:00"), End: clockPtr("09:00")},
			},
			wantFields: []string{"deliveryWindow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errs.Is(err, settings.ErrInvalidSettings))
			assert.True(t, errs.IsInvalidInput(err))

			var verr *settings.ValidationError
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestOverrides(t *testing.T) {
	var nilSettings *settings.Settings
	assert.Nil(t, nilSettings.Overrides())

	s := settings.Default()
	s.Pricing.DeliveryFee = patch.Ptr(35.0)
	q, err := pricing.NewDefaultCalculator().Calculate(catalog.MachineSingle, nil, s.Overrides())
	require.NoError(t, err)
	assert.Equal(t, 35.0, q.DeliveryFee)
}
