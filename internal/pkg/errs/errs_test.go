//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"party-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the original and the mark", func(t *testing.T) {
		base := errors.New("bad date")
		marked := errs.Invalid(base)

		assert.True(t, errs.IsInvalidInput(marked))
		assert.True(t, errors.Is(marked, base))
		assert.False(t, errors.Is(marked, errs.ErrNotFound))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	})

	t.Run("wrap keeps the mark", func(t *testing.T) {
		marked := errs.Invalid(errors.New("bad capacity"))
		wrapped := errs.Wrap(marked, "parse query")

		assert.True(t, errs.IsInvalidInput(wrapped))
		assert.Contains(t, wrapped.Error(), "parse query")
	})

	t.Run("wrap of nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
