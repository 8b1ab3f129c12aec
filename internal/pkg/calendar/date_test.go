//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"party-rental/internal/pkg/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("round trip keeps the calendar day in every zone", func(t *testing.T) {
		zones := []string{"UTC", "America/Chicago", "America/Los_Angeles", "Pacific/Kiritimati", "Asia/Tokyo"}
		for _, name := range zones {
			loc, err := time.LoadLocation(name)
			require.NoError(t, err)

			d, err := calendar.Parse("2025-07-04")
			require.NoError(t, err)

			local := d.In(loc)
			back := calendar.FromTime(local)
			assert.Equal(t, 2025, back.Year, name)
			assert.Equal(t, time.July, back.Month, name)
			assert.Equal(t, 4, back.Day, name)
			assert.Equal(t, "2025-07-04", back.String(), name)
		}
	})

	cases := []struct {
		name  string
		input string
		err   error
	}{
		{name: "valid", input: "2024-02-29"},
		{name: "not a leap year", input: "2025-02-29", err: calendar.ErrInvalidDate},
		{name: "month 13", input: "2025-13-01", err: calendar.ErrInvalidDate},
		{name: "day zero", input: "2025-01-00", err: calendar.ErrInvalidDate},
		{name: "missing padding", input: "2025-7-4", err: calendar.ErrInvalidDateFormat},
		{name: "timestamp", input: "2025-07-04T00:00:00Z", err: calendar.ErrInvalidDateFormat},
		{name: "empty", input: "", err: calendar.ErrInvalidDateFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.Parse(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDateArithmetic(t *testing.T) {
	d := calendar.MustParse("2025-12-31")

	assert.Equal(t, "2026-01-01", d.AddDays(1).String())
	assert.Equal(t, "2025-12-30", d.AddDays(-1).String())
	assert.Equal(t, 1, d.DaysUntil(calendar.MustParse("2026-01-01")))
	assert.Equal(t, -31, d.DaysUntil(calendar.MustParse("2025-11-30")))
	assert.Equal(t, 2914634, calendar.MustParse("2020-01-01").DaysUntil(calendar.MustParse("9999-12-31")))

	assert.True(t, d.Within(calendar.MustParse("2025-12-31"), calendar.MustParse("2025-12-31")))
	assert.False(t, d.Within(calendar.MustParse("2026-01-01"), calendar.MustParse("2026-01-05")))
	assert.True(t, calendar.MustParse("2025-07-05").IsWeekend())
	assert.False(t, calendar.MustParse("2025-07-04").IsWeekend())
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Date calendar.Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-07-04"}`), &payload))
	assert.Equal(t, calendar.Date{Year: 2025, Month: time.July, Day: 4}, payload.Date)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-07-04"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"07/04/2025"}`), &payload))
}

func TestParseClockTime(t *testing.T) {
	start, err := calendar.ParseClockTime("09:30")
	require.NoError(t, err)
	end, err := calendar.ParseClockTime("17:00")
	require.NoError(t, err)

	assert.True(t, start.Before(end))
	assert.Equal(t, "09:30", start.String())

	for _, bad := range []string{"24:00", "9:30", "12:60", "noon"} {
		_, err := calendar.ParseClockTime(bad)
		assert.ErrorIs(t, err, calendar.ErrInvalidClockTime, bad)
	}
}
