package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"party-rental/internal/domain/availability"
	"party-rental/internal/domain/booking"
	reqdto "party-rental/internal/handler/dto/request"
	"party-rental/internal/infra"
	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/usecase/queries"
	"party-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const overdueSweepBatch = 100

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey string) (*CreateBookingResult, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	CompleteOverdue(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	clock    clock.Clock
	location *time.Location
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		factory:  factory,
		clock:    clk,
		location: factory.Location,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, idempotencyKey string) (*CreateBookingResult, error) {
	domainReq := req.ToDomain(idempotencyKey)

	if domainReq.IdempotencyKey != nil {
		existing, err := c.findReplay(ctx, *domainReq.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &CreateBookingResult{Booking: queries.NewBookingView(existing), IsReplayed: true}, nil
		}
	}

	var created *booking.Booking
	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Reads().Settings(ctx)
		if err != nil {
			return err
		}

		b, err := c.factory.CreateBooking(domainReq, s.Overrides())
		if err != nil {
			return err
		}

		if err := c.ensureAvailable(ctx, tx, b); err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrNotAvailable
			}
			return err
		}

		payload, err := json.Marshal(bookingNotification(b))
		if err != nil {
			return errs.Wrap(err, "encode confirmation payload")
		}
		if err := tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.NotificationTopicBookingConfirmation, payload, c.clock.Now()); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		// a concurrent request with the same key won the insert
		if domainReq.IdempotencyKey != nil && infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := c.findReplay(ctx, *domainReq.IdempotencyKey)
			if findErr != nil {
				return nil, findErr
			}
			if existing != nil {
				return &CreateBookingResult{Booking: queries.NewBookingView(existing), IsReplayed: true}, nil
			}
		}
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", created.ID(),
		"machine_type", created.MachineType(),
		"rental_date", created.RentalDate().String(),
		"total", created.Price().Total,
	)
	return &CreateBookingResult{Booking: queries.NewBookingView(created)}, nil
}

// ensureAvailable checks every rental day against blackouts and active bookings.
func (c *bookingCommandsImpl) ensureAvailable(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	blackouts, err := tx.Reads().BlackoutsCovering(ctx, b.RentalDate(), b.ReturnDate())
	if err != nil {
		return err
	}
	reservations, err := tx.Reads().ActiveReservations(ctx, b.MachineType(), b.Capacity(), b.RentalDate(), b.ReturnDate())
	if err != nil {
		return err
	}

	result := availability.CheckRange(b.MachineType(), b.Capacity(), b.RentalDate(), b.ReturnDate(), blackouts, reservations)
	if !result.Available {
		return errs.Wrapf(booking.ErrNotAvailable, "%s on %s", result.Reason, result.Date)
	}
	return nil
}

func (c *bookingCommandsImpl) findReplay(ctx context.Context, key string) (*booking.Booking, error) {
	existing, err := c.uow.CommandReads().BookingByIdempotencyKey(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	next, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.ErrBookingNotFound
			}
			return err
		}

		now := c.clock.Now()
		if err := b.ChangeStatus(next, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.ErrBookingNotFound
			}
			return err
		}

		payload, err := json.Marshal(bookingNotification(b))
		if err != nil {
			return errs.Wrap(err, "encode status payload")
		}
		if err := tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.NotificationTopicBookingStatus, payload, now); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking status changed", "booking_id", id, "status", next)
	return queries.NewBookingView(updated), nil
}

// CompleteOverdue marks rentals whose return date has passed as completed.
// Pending bookings are left for staff to resolve.
func (c *bookingCommandsImpl) CompleteOverdue(ctx context.Context) (int, error) {
	today := clock.Today(c.clock, c.location)

	completed := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		completed = 0
		overdue, err := tx.Reads().OverdueBookings(ctx, today, overdueSweepBatch)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		for _, b := range overdue {
			changed, err := b.CompleteOverdue(today, now)
			if err != nil {
				slog.Warn("skipping overdue booking", "booking_id", b.ID(), "status", b.Status(), "error", err.Error())
				continue
			}
			if !changed {
				continue
			}
			if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
				return err
			}
			completed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return completed, nil
}

func bookingNotification(b *booking.Booking) shared.BookingNotification {
	customer := b.Customer()
	return shared.BookingNotification{
		BookingID:     b.ID(),
		CustomerName:  customer.Name(),
		CustomerEmail: customer.Email(),
		MachineType:   b.MachineType().String(),
		Capacity:      b.Capacity().Int(),
		Mixers:        b.Mixers(),
		RentalDate:    b.RentalDate().String(),
		ReturnDate:    b.ReturnDate().String(),
		EventAddress:  b.EventAddress().String(),
		Status:        b.Status().String(),
		Total:         b.Price().Total,
	}
}
