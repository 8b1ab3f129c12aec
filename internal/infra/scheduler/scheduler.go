// Package scheduler runs the background jobs: outbox dispatch and the
// overdue booking sweep.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrBadInterval   = errors.New("job interval must be positive")
)

// Task receives a context that is cancelled after the job timeout.
type Task func(ctx context.Context) error

type Scheduler struct {
	scheduler gocron.Scheduler
	timeout   time.Duration
	stopOnce  sync.Once
	stopErr   error
}

func New(loc *time.Location, jobTimeout time.Duration) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	s, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
					slog.Error("scheduler job failed", "job_id", jobID.String(), "job_name", jobName, "error", err.Error())
				}),
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					slog.Error("scheduler job panicked", "job_id", jobID.String(), "job_name", jobName, "panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: s, timeout: jobTimeout}, nil
}

// AddIntervalJob runs task once at start and then every interval.
func (s *Scheduler) AddIntervalJob(name string, interval time.Duration, task Task) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyJobName
	}
	if interval <= 0 {
		return ErrBadInterval
	}
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.wrap(name, task)),
		gocron.WithName(name),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	slog.Info("scheduler job registered", "job_name", name, "interval", interval.String())
	return nil
}

func (s *Scheduler) AddCronJob(name, cronExpr string, task Task) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return ErrEmptyCronExpr
	}
	_, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(s.wrap(name, task)),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}
	slog.Info("scheduler job registered", "job_name", name, "cron", cronExpr)
	return nil
}

func (s *Scheduler) wrap(name string, task Task) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		slog.Debug("scheduler job started", "job_name", name)
		return task(ctx)
	}
}

func (s *Scheduler) Start() {
	slog.Info("scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		slog.Info("scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
