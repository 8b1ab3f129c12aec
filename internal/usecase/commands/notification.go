package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"party-rental/internal/pkg/clock"
	"party-rental/internal/pkg/errs"
	"party-rental/internal/usecase/shared"
)

var (
	errUnknownTopic       = errs.New("unknown notification topic")
	errNoBusinessInbox    = errs.New("business contact email is not configured")
	errUndecodablePayload = errs.New("notification payload cannot be decoded")
)

type DispatchConfig struct {
	BatchSize     int
	MaxAttempts   int
	RetryBase     time.Duration
	Lease         time.Duration // how long a claimed job stays hidden from other runs
	BusinessName  string
	BusinessEmail string // receives contact form notifications
}

type DispatchResult struct {
	Sent    int
	Retried int
	Dead    int
}

type NotificationCommands interface {
	DispatchDue(ctx context.Context) (DispatchResult, error)
}

type notificationCommandsImpl struct {
	uow    shared.UnitOfWork
	mailer Mailer
	clock  clock.Clock
	cfg    DispatchConfig
}

func NewNotificationCommands(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock, cfg DispatchConfig) NotificationCommands {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = time.Minute
	}
	if cfg.Lease <= 0 {
		cfg.Lease = 5 * time.Minute
	}
	return &notificationCommandsImpl{uow: uow, mailer: mailer, clock: clk, cfg: cfg}
}

// DispatchDue claims a batch, sends it outside any transaction and records
// each outcome in its own transaction, so a failed status write never rolls
// back the record of emails that already went out. A job whose outcome could
// not be recorded is sent again once its lease runs out.
func (c *notificationCommandsImpl) DispatchDue(ctx context.Context) (DispatchResult, error) {
	var result DispatchResult
	now := c.clock.Now()

	jobs, err := c.claim(ctx, now)
	if err != nil {
		return result, err
	}

	var recordErr error
	for _, job := range jobs {
		sendErr := c.deliver(ctx, job)
		outcome, err := c.record(ctx, job, now, sendErr)
		if err != nil {
			slog.Error("failed to record notification outcome", "job_id", job.ID, "error", err.Error())
			if recordErr == nil {
				recordErr = err
			}
			continue
		}
		switch outcome {
		case outcomeSent:
			result.Sent++
		case outcomeRetried:
			result.Retried++
		case outcomeDead:
			result.Dead++
		}
	}
	return result, recordErr
}

type dispatchOutcome int

const (
	outcomeSent dispatchOutcome = iota
	outcomeRetried
	outcomeDead
)

// claim locks due jobs and leases them past the send window.
func (c *notificationCommandsImpl) claim(ctx context.Context, now time.Time) ([]shared.NotificationJob, error) {
	var jobs []shared.NotificationJob
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		due, err := tx.Reads().DueNotificationJobs(ctx, now, c.cfg.BatchSize)
		if err != nil {
			return err
		}
		until := now.Add(c.cfg.Lease)
		for _, job := range due {
			if err := tx.Notifications().Lease(ctx, job.ID, until); err != nil {
				return err
			}
		}
		jobs = due
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *notificationCommandsImpl) record(ctx context.Context, job shared.NotificationJob, now time.Time, sendErr error) (dispatchOutcome, error) {
	if sendErr == nil {
		return outcomeSent, c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkSent(ctx, job)
		})
	}

	retryAt := c.nextAttempt(job, now, sendErr)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkFailed(ctx, job, sendErr.Error(), retryAt)
	})
	if err != nil {
		return outcomeDead, err
	}
	if retryAt == nil {
		slog.Error("notification dead", "job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts+1, "error", sendErr.Error())
		return outcomeDead, nil
	}
	slog.Warn("notification failed, will retry", "job_id", job.ID, "topic", job.Topic, "retry_at", *retryAt, "error", sendErr.Error())
	return outcomeRetried, nil
}

func (c *notificationCommandsImpl) deliver(ctx context.Context, job shared.NotificationJob) error {
	msg, err := c.render(job)
	if err != nil {
		return err
	}
	return c.mailer.Send(ctx, msg)
}

// nextAttempt returns nil when the job should not be tried again.
func (c *notificationCommandsImpl) nextAttempt(job shared.NotificationJob, now time.Time, sendErr error) *time.Time {
	if errs.Is(sendErr, errUnknownTopic) || errs.Is(sendErr, errUndecodablePayload) || errs.Is(sendErr, errNoBusinessInbox) {
		return nil
	}
	attempts := job.Attempts + 1
	if attempts >= c.cfg.MaxAttempts {
		return nil
	}
	next := now.Add(c.cfg.RetryBase << (attempts - 1))
	return &next
}

func (c *notificationCommandsImpl) render(job shared.NotificationJob) (shared.EmailMessage, error) {
	switch job.Topic {
	case shared.NotificationTopicBookingConfirmation, shared.NotificationTopicBookingStatus:
		var n shared.BookingNotification
		if err := json.Unmarshal(job.Payload, &n); err != nil {
			return shared.EmailMessage{}, errs.Mark(err, errUndecodablePayload)
		}
		if job.Topic == shared.NotificationTopicBookingConfirmation {
			return buildBookingConfirmation(c.cfg.BusinessName, c.cfg.BusinessEmail, n), nil
		}
		return buildBookingStatusUpdate(c.cfg.BusinessName, c.cfg.BusinessEmail, n), nil
	case shared.NotificationTopicContactReceived:
		if c.cfg.BusinessEmail == "" {
			return shared.EmailMessage{}, errNoBusinessInbox
		}
		var n shared.ContactNotification
		if err := json.Unmarshal(job.Payload, &n); err != nil {
			return shared.EmailMessage{}, errs.Mark(err, errUndecodablePayload)
		}
		return buildContactReceived(c.cfg.BusinessEmail, n), nil
	default:
		return shared.EmailMessage{}, errs.Wrapf(errUnknownTopic, "topic %q", job.Topic)
	}
}
