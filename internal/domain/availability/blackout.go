package availability

import (
	"errors"
	"strings"
	"time"

	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 500

var (
	ErrInvalidBlackoutType   = errs.Invalid(errors.New("blackout type must be full_day or time_range"))
	ErrEndBeforeStart        = errs.Invalid(errors.New("end date must be on or after start date"))
	ErrTimeRangeRequired     = errs.Invalid(errors.New("start and end time are required for time_range blackouts"))
	ErrTimeRangeNotAllowed   = errs.Invalid(errors.New("start and end time are only allowed for time_range blackouts"))
	ErrStartTimeNotBeforeEnd = errs.Invalid(errors.New("start time must be before end time"))
	ErrReasonTooLong         = errs.Invalid(errors.New("reason must be at most 500 characters"))
	ErrBlackoutNotFound      = errs.Mark(errors.New("blackout period not found"), errs.ErrNotFound)
)

type BlackoutType string

const (
	BlackoutFullDay   BlackoutType = "full_day"
	BlackoutTimeRange BlackoutType = "time_range"
)

func (t BlackoutType) String() string {
	return string(t)
}

func (t BlackoutType) IsValid() bool {
	return t == BlackoutFullDay || t == BlackoutTimeRange
}

// BlackoutInput carries unparsed admin input for creating or editing a period.
type BlackoutInput struct {
	StartDate string
	EndDate   *string
	Type      string
	StartTime *string
	EndTime   *string
	Reason    string
}

type BlackoutPeriod struct {
	id        uuid.UUID
	startDate calendar.Date
	endDate   *calendar.Date
	kind      BlackoutType
	startTime *calendar.ClockTime
	endTime   *calendar.ClockTime
	reason    string
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

type blackoutFields struct {
	startDate calendar.Date
	endDate   *calendar.Date
	kind      BlackoutType
	startTime *calendar.ClockTime
	endTime   *calendar.ClockTime
	reason    string
}

func NewBlackoutPeriod(in BlackoutInput, createdBy uuid.UUID, now time.Time) (*BlackoutPeriod, error) {
	f, err := parseBlackout(in)
	if err != nil {
		return nil, err
	}
	b := &BlackoutPeriod{
		id:        uuid.New(),
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
	b.apply(f)
	return b, nil
}

func ReconstructBlackoutPeriod(
	id uuid.UUID,
	startDate calendar.Date,
	endDate *calendar.Date,
	kind BlackoutType,
	startTime, endTime *calendar.ClockTime,
	reason string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *BlackoutPeriod {
	return &BlackoutPeriod{
		id:        id,
		startDate: startDate,
		endDate:   endDate,
		kind:      kind,
		startTime: startTime,
		endTime:   endTime,
		reason:    reason,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces every editable field after validating the new values.
func (b *BlackoutPeriod) Update(in BlackoutInput, now time.Time) error {
	f, err := parseBlackout(in)
	if err != nil {
		return err
	}
	b.apply(f)
	b.updatedAt = now
	return nil
}

func (b *BlackoutPeriod) apply(f blackoutFields) {
	b.startDate = f.startDate
	b.endDate = f.endDate
	b.kind = f.kind
	b.startTime = f.startTime
	b.endTime = f.endTime
	b.reason = f.reason
}

func parseBlackout(in BlackoutInput) (blackoutFields, error) {
	var f blackoutFields

	start, err := calendar.Parse(in.StartDate)
	if err != nil {
		return f, errs.Invalid(errs.Wrap(err, "startDate"))
	}
	f.startDate = start

	if in.EndDate != nil && *in.EndDate != "" {
		end, err := calendar.Parse(*in.EndDate)
		if err != nil {
			return f, errs.Invalid(errs.Wrap(err, "endDate"))
		}
		if end.Before(start) {
			return f, ErrEndBeforeStart
		}
		f.endDate = &end
	}

	f.kind = BlackoutType(in.Type)
	if in.Type == "" {
		f.kind = BlackoutFullDay
	}
	if !f.kind.IsValid() {
		return f, ErrInvalidBlackoutType
	}

	hasStart := in.StartTime != nil && *in.StartTime != ""
	hasEnd := in.EndTime != nil && *in.EndTime != ""
	switch f.kind {
	case BlackoutTimeRange:
		if !hasStart || !hasEnd {
			return f, ErrTimeRangeRequired
		}
		st, err := calendar.ParseClockTime(*in.StartTime)
		if err != nil {
			return f, errs.Invalid(errs.Wrap(err, "startTime"))
		}
		et, err := calendar.ParseClockTime(*in.EndTime)
		if err != nil {
			return f, errs.Invalid(errs.Wrap(err, "endTime"))
		}
		if !st.Before(et) {
			return f, ErrStartTimeNotBeforeEnd
		}
		f.startTime, f.endTime = &st, &et
	case BlackoutFullDay:
		if hasStart || hasEnd {
			return f, ErrTimeRangeNotAllowed
		}
	}

	f.reason = strings.TrimSpace(in.Reason)
	if len([]rune(f.reason)) > MaxReasonLength {
		return f, ErrReasonTooLong
	}
	return f, nil
}

// LastDate is the inclusive last day; a period without an end date covers
// only its start date.
func (b *BlackoutPeriod) LastDate() calendar.Date {
	if b.endDate != nil {
		return *b.endDate
	}
	return b.startDate
}

// Covers compares calendar days only. Time-range periods block the whole day.
func (b *BlackoutPeriod) Covers(d calendar.Date) bool {
	return d.Within(b.startDate, b.LastDate())
}

func (b *BlackoutPeriod) ID() uuid.UUID                  { return b.id }
func (b *BlackoutPeriod) StartDate() calendar.Date       { return b.startDate }
func (b *BlackoutPeriod) EndDate() *calendar.Date        { return b.endDate }
func (b *BlackoutPeriod) Type() BlackoutType             { return b.kind }
func (b *BlackoutPeriod) StartTime() *calendar.ClockTime { return b.startTime }
func (b *BlackoutPeriod) EndTime() *calendar.ClockTime   { return b.endTime }
func (b *BlackoutPeriod) Reason() string                 { return b.reason }
func (b *BlackoutPeriod) CreatedBy() uuid.UUID           { return b.createdBy }
func (b *BlackoutPeriod) CreatedAt() time.Time           { return b.createdAt }
func (b *BlackoutPeriod) UpdatedAt() time.Time           { return b.updatedAt }
