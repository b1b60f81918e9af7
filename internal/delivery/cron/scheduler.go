// Package cron runs the reminder pass on an in-process schedule.
package cron

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ignite/config"
	"ignite/internal/delivery"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/calendar"
	"ignite/internal/domain/constants"
	"ignite/internal/errors"
	"ignite/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type scheduler struct {
	spec       string
	runTimeout time.Duration
	cron       *cron.Cron
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// SchedulerParams holds dependencies for the cron delivery
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewScheduler creates the cron delivery. An empty cron.schedule leaves it idle.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	loc, err := calendar.LoadLocation(params.Cfg.Reminder.Timezone)
	if err != nil {
		return nil, errors.Wrap(err, "cron timezone")
	}

	s := &scheduler{
		spec:       strings.TrimSpace(params.Cfg.Cron.Schedule),
		runTimeout: params.Cfg.Cron.RunTimeout,
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}

	cronLogger := slogCronLogger{logger: params.Logger}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if s.spec != "" {
		if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
			return nil, errors.Wrapf(err, "invalid cron schedule %q", s.spec)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the schedule and returns; jobs run on the cron goroutine.
func (s *scheduler) Serve(ctx context.Context) error {
	if s.spec == "" {
		s.logger.Info("In-process reminder schedule disabled")

		return nil
	}

	s.cron.Start()
	s.logger.Info("Reminder schedule started",
		slog.String("schedule", s.spec),
		slog.Duration("run_timeout", s.runTimeout),
	)

	return nil
}

func (s *scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	s.runOnce(ctx)
}

func (s *scheduler) runOnce(ctx context.Context) {
	ctx, logger := deliverycontext.WithRun(ctx, s.logger, constants.TickSourceCron)

	if _, err := s.reminderUC.RunDailyReminders(ctx); err != nil {
		logger.Error("[Cron] Reminder run failed", slog.Any("error", err))
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for running reminder job")
	}
}

// slogCronLogger routes cron's internal logging to slog
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
