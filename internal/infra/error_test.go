//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"party-rental/internal/infra"
	"party-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
		wantMark error
	}{
		{name: "defaults to db failure", wantKind: infra.KindDBFailure, wantMark: errs.ErrDatabaseOperationFailed},
		{name: "not found", kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound, wantMark: errs.ErrNotFound},
		{name: "overlap", kind: []infra.RepositoryErrorKind{infra.KindConflict}, wantKind: infra.KindConflict, wantMark: errs.ErrConflict},
		{name: "duplicate key", kind: []infra.RepositoryErrorKind{infra.KindDuplicateKey}, wantKind: infra.KindDuplicateKey, wantMark: errs.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := errors.New("driver said no")
			err := infra.WrapRepoErr("saving booking", cause, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.wantKind))
			assert.ErrorIs(t, err, tt.wantMark)
			assert.ErrorIs(t, err, cause)
			assert.Contains(t, err.Error(), "saving booking")
		})
	}

	t.Run("nil cause keeps the message", func(t *testing.T) {
		err := infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)

		assert.Equal(t, "NOT_FOUND: booking not found", err.Error())
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unrelated errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	})
}
