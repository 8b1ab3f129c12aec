//go:build unit

package queries

import (
	"testing"

	"party-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	q := NewRecommendationQueries()

	t.Run("small winter weekday party", func(t *testing.T) {
		got, err := q.Recommend(20, "2026-01-14")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "single", got.MachineType)
		assert.Equal(t, 15, got.Capacity)
		assert.Equal(t, "high", got.Confidence)
	})

	t.Run("large party", func(t *testing.T) {
		got, err := q.Recommend(100, "2026-01-14")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "triple", got.MachineType)
		assert.Equal(t, 45, got.Capacity)
		assert.Len(t, got.SuggestedMixers, 3)
	})

	t.Run("no guests", func(t *testing.T) {
		got, err := q.Recommend(0, "2026-01-14")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no guests wins over a bad date", func(t *testing.T) {
		for _, guests := range []int{0, -5} {
			got, err := q.Recommend(guests, "bad")
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := q.Recommend(20, "soon")
		assert.True(t, errs.IsInvalidInput(err))
	})
}
