// Package cache keeps the settings record in Redis so public pricing reads
// skip PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"party-rental/internal/domain/settings"
	"party-rental/internal/infra/repository/converter"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const settingsKey = "party-rental:settings:v1"

type SettingsSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type cachedSettings struct {
	Pricing             converter.PricingDoc `json:"pricing"`
	DeliveryWindowStart *string              `json:"deliveryWindowStart,omitempty"`
	DeliveryWindowEnd   *string              `json:"deliveryWindowEnd,omitempty"`
	UpdatedBy           *uuid.UUID           `json:"updatedBy,omitempty"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// SettingsCache is a read-through cache. Redis failures fall back to the
// source; they never fail a request.
type SettingsCache struct {
	client redis.Cmdable
	source SettingsSource
	ttl    time.Duration
}

func NewSettingsCache(client redis.Cmdable, source SettingsSource, ttl time.Duration) *SettingsCache {
	return &SettingsCache{client: client, source: source, ttl: ttl}
}

func (c *SettingsCache) Current(ctx context.Context) (*settings.Settings, error) {
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	switch {
	case err == nil:
		s, decodeErr := decodeSettings(raw)
		if decodeErr == nil {
			return s, nil
		}
		slog.Warn("discarding undecodable settings cache entry", "error", decodeErr.Error())
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("settings cache read failed", "error", err.Error())
	}

	s, err := c.source.Get(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeSettings(s)
	if err != nil {
		slog.Warn("failed to encode settings for cache", "error", err.Error())
		return s, nil
	}
	if err := c.client.Set(ctx, settingsKey, encoded, c.ttl).Err(); err != nil {
		slog.Warn("settings cache write failed", "error", err.Error())
	}
	return s, nil
}

func (c *SettingsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, settingsKey).Err(); err != nil {
		return errs.Wrap(err, "invalidate settings cache")
	}
	return nil
}

func encodeSettings(s *settings.Settings) ([]byte, error) {
	doc := cachedSettings{
		Pricing:   converter.PricingToDoc(s.Pricing),
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
	if t := s.DeliveryWindow.Start; t != nil {
		str := t.String()
		doc.DeliveryWindowStart = &str
	}
	if t := s.DeliveryWindow.End; t != nil {
		str := t.String()
		doc.DeliveryWindowEnd = &str
	}
	return json.Marshal(doc)
}

func decodeSettings(raw []byte) (*settings.Settings, error) {
	var doc cachedSettings
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	s := &settings.Settings{
		Pricing:   converter.PricingFromDoc(doc.Pricing),
		UpdatedBy: doc.UpdatedBy,
		UpdatedAt: doc.UpdatedAt,
	}
	start, err := parseClock(doc.DeliveryWindowStart)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(doc.DeliveryWindowEnd)
	if err != nil {
		return nil, err
	}
	s.DeliveryWindow = settings.DeliveryWindow{Start: start, End: end}
	return s, nil
}

func parseClock(s *string) (*calendar.ClockTime, error) {
	if s == nil {
		return nil, nil
	}
	t, err := calendar.ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
