//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateConversion(t *testing.T) {
	d := calendar.MustParse("2025-07-04")

	pd := pgconv.DateToPgtype(d)
	assert.True(t, pd.Valid)
	assert.Equal(t, d, pgconv.DateFromPgtype(pd))

	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{}))
	assert.False(t, pgconv.DatePtrToPgtype(nil).Valid)
}

func TestDateFromPgtypeIgnoresLocation(t *testing.T) {
	// pgx hands back UTC midnight; even if a caller converts it to a western
	// zone first, the stored day must come back unchanged.
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	pd := pgtype.Date{Time: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC).In(loc), Valid: true}
	assert.Equal(t, "2025-07-04", pgconv.DateFromPgtype(pd).String())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.True(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pgconv.IsRetryable(fmt.Errorf("tx: %w", &pgconn.PgError{Code: "40001"})))
	assert.True(t, pgconv.IsRetryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, pgconv.IsRetryable(errors.New("plain")))
	assert.True(t, pgconv.IsExclusionViolation(&pgconn.PgError{Code: "23P01"}))
}
