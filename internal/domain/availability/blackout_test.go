//go:build unit

package availability_test

import (
	"strings"
	"testing"
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlackoutPeriod(t *testing.T) {
	tests := []struct {
		name  string
		in    availability.BlackoutInput
		errIs error
	}{
		{
			name: "single full day",
			in:   availability.BlackoutInput{StartDate: "2025-07-04", Type: "full_day", Reason: "Holiday"},
		},
		{
			name: "type defaults to full day",
			in:   availability.BlackoutInput{StartDate: "2025-07-04"},
		},
		{
			name: "multi day",
			in:   availability.BlackoutInput{StartDate: "2025-07-04", EndDate: patch.Ptr("2025-07-06"), Type: "full_day"},
		},
		{
			name: "time range",
			in: availability.BlackoutInput{
				StartDate: "2025-07-04", Type: "time_range",
				StartTime: patch.Ptr("08:00"), EndTime: patch.Ptr("12:30"),
			},
		},
		{
			name:  "end before start",
			in:    availability.BlackoutInput{StartDate: "2025-07-04", EndDate: patch.Ptr("2025-07-03")},
			errIs: availability.ErrEndBeforeStart,
		},
		{
			name:  "bad start date",
			in:    availability.BlackoutInput{StartDate: "2025-7-4"},
			errIs: calendar.ErrInvalidDateFormat,
		},
		{
			name:  "unknown type",
			in:    availability.BlackoutInput{StartDate: "2025-07-04", Type: "half_day"},
			errIs: availability.ErrInvalidBlackoutType,
		},
		{
			name:  "time range without times",
			in:    availability.BlackoutInput{StartDate: "2025-07-04", Type: "time_range", StartTime: patch.Ptr("08:00")},
			errIs: availability.ErrTimeRangeRequired,
		},
		{
			name: "full day with times",
			in: availability.BlackoutInput{
				StartDate: "2025-07-04", Type: "full_day",
				StartTime: patch.Ptr("08:00"), EndTime: patch.Ptr("09:00"),
			},
			errIs: availability.ErrTimeRangeNotAllowed,
		},
		{
			name: "malformed time",
			in: availability.BlackoutInput{
				StartDate: "2025-07-04", Type: "time_range",
				StartTime: patch.Ptr("8am"), EndTime: patch.Ptr("09:00"),
			},
			errIs: calendar.ErrInvalidClockTime,
		},
		{
			name: "start time equals end time",
			in: availability.BlackoutInput{
				StartDate: "2025-07-04", Type: "time_range",
				StartTime: patch.Ptr("09:00"), EndTime: patch.Ptr("09:00"),
			},
			errIs: availability.ErrStartTimeNotBeforeEnd,
		},
		{
			name:  "reason too long",
			in:    availability.BlackoutInput{StartDate: "2025-07-04", Reason: strings.Repeat("x", 501)},
			errIs: availability.ErrReasonTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := availability.NewBlackoutPeriod(tt.in, uuid.New(), now)
			if tt.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, b)
				assert.NotEqual(t, uuid.Nil, b.ID())
				return
			}
			require.Nil(t, b)
			require.ErrorIs(t, err, tt.errIs)
			assert.True(t, errs.IsInvalidInput(err))
		})
	}
}

func TestBlackoutPeriodUpdate(t *testing.T) {
	b := blackout(t, "2025-07-04", nil)
	created := b.CreatedAt()
	later := now.Add(time.Hour)

	err := b.Update(availability.BlackoutInput{StartDate: "2025-07-05", EndDate: patch.Ptr("2025-07-07"), Reason: "Inventory"}, later)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-07", b.LastDate().String())
	assert.Equal(t, "Inventory", b.Reason())
	assert.Equal(t, created, b.CreatedAt())
	assert.Equal(t, later, b.UpdatedAt())

	err = b.Update(availability.BlackoutInput{StartDate: "2025-07-05", EndDate: patch.Ptr("2025-07-01")}, later)
	require.ErrorIs(t, err, availability.ErrEndBeforeStart)
	assert.Equal(t, "2025-07-07", b.LastDate().String())
}
