package converter

import (
	"party-rental/internal/domain/availability"
	"party-rental/internal/infra/sqlstore"
	"party-rental/internal/pkg/calendar"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BlackoutToCreateParams(b *availability.BlackoutPeriod) sqlstore.CreateBlackoutPeriodParams {
	return sqlstore.CreateBlackoutPeriodParams{
		ID:        b.ID(),
		StartDate: pgconv.DateToPgtype(b.StartDate()),
		EndDate:   pgconv.DatePtrToPgtype(b.EndDate()),
		Type:      b.Type().String(),
		StartTime: clockTimeToPgtype(b.StartTime()),
		EndTime:   clockTimeToPgtype(b.EndTime()),
		Reason:    b.Reason(),
		CreatedBy: b.CreatedBy(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BlackoutToUpdateParams(b *availability.BlackoutPeriod) sqlstore.UpdateBlackoutPeriodParams {
	return sqlstore.UpdateBlackoutPeriodParams{
		ID:        b.ID(),
		StartDate: pgconv.DateToPgtype(b.StartDate()),
		EndDate:   pgconv.DatePtrToPgtype(b.EndDate()),
		Type:      b.Type().String(),
		StartTime: clockTimeToPgtype(b.StartTime()),
		EndTime:   clockTimeToPgtype(b.EndTime()),
		Reason:    b.Reason(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BlackoutFromRow(row sqlstore.BlackoutPeriods) (*availability.BlackoutPeriod, error) {
	kind := availability.BlackoutType(row.Type)
	if !kind.IsValid() {
		return nil, errs.Wrapf(availability.ErrInvalidBlackoutType, "blackout %s", row.ID)
	}
	startTime, err := clockTimeFromPgtype(row.StartTime)
	if err != nil {
		return nil, errs.Wrapf(err, "blackout %s", row.ID)
	}
	endTime, err := clockTimeFromPgtype(row.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "blackout %s", row.ID)
	}

	return availability.ReconstructBlackoutPeriod(
		row.ID,
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DatePtrFromPgtype(row.EndDate),
		kind,
		startTime,
		endTime,
		row.Reason,
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BlackoutsFromRows(rows []sqlstore.BlackoutPeriods) ([]*availability.BlackoutPeriod, error) {
	items := make([]*availability.BlackoutPeriod, 0, len(rows))
	for _, row := range rows {
		b, err := BlackoutFromRow(row)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func clockTimeToPgtype(t *calendar.ClockTime) pgtype.Text {
	if t == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: t.String(), Valid: true}
}

func clockTimeFromPgtype(t pgtype.Text) (*calendar.ClockTime, error) {
	if !t.Valid {
		return nil, nil
	}
	ct, err := calendar.ParseClockTime(t.String)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
