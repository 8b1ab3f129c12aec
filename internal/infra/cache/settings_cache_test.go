//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"party-rental/internal/domain/catalog"
	"party-rental/internal/domain/pricing"
	"party-rental/internal/domain/settings"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/patch"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingsSource struct {
	mock.Mock
}

func (m *MockSettingsSource) Get(ctx context.Context) (*settings.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Settings), args.Error(1)
}

// unreachableRedis fails every command quickly.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestSettingsCodec(t *testing.T) {
	start := calendar.MustParseClockTime("09:00")
	end := calendar.MustParseClockTime("17:30")
	actor := uuid.New()
	in := &settings.Settings{
		Pricing: pricing.Overrides{
			DeliveryFee: patch.Ptr(25.0),
			Machines: map[catalog.MachineType]pricing.MachineOverride{
				catalog.MachineDouble: {BasePrice: patch.Ptr(180.0)},
			},
			Mixers: map[string]pricing.MixerOverride{
				"margarita": {Price: patch.Ptr(22.5)},
			},
		},
		DeliveryWindow: settings.DeliveryWindow{Start: &start, End: &end},
		UpdatedBy:      &actor,
		UpdatedAt:      time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	raw, err := encodeSettings(in)
	require.NoError(t, err)
	out, err := decodeSettings(raw)
	require.NoError(t, err)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsCacheFallsBackToSource(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	want := settings.Default()
	want.Pricing.SalesTaxRate = patch.Ptr(0.0725)

	source := new(MockSettingsSource)
	source.On("Get", mock.Anything).Return(want, nil)

	got, err := NewSettingsCache(client, source, time.Minute).Current(context.Background())

	require.NoError(t, err)
	assert.Same(t, want, got)
	source.AssertNumberOfCalls(t, "Get", 1)
}

func TestSettingsCacheSourceError(t *testing.T) {
	client := unreachableRedis()
	defer client.Close()

	source := new(MockSettingsSource)
	source.On("Get", mock.Anything).Return(nil, assert.AnError)

	_, err := NewSettingsCache(client, source, time.Minute).Current(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDecodeRejectsBadClock(t *testing.T) {
	_, err := decodeSettings([]byte(`{"pricing":{},"deliveryWindowStart":"25:00"}`))
	assert.Error(t, err)
}
