package cron

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/constants"
	"ignite/internal/domain/entity"
	"ignite/internal/errors"
	mockusecase "ignite/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConfig(schedule string) *config.Config {
	return &config.Config{
		Cron:     &config.CronConfig{Schedule: schedule, RunTimeout: time.Minute},
		Reminder: &config.ReminderConfig{Timezone: config.DefaultTimezone},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_RejectsInvalidSchedule(t *testing.T) {
	_, err := NewScheduler(SchedulerParams{
		Lc:         fxtest.NewLifecycle(t),
		Cfg:        newTestConfig("every day at nine"),
		Logger:     discardLogger(),
		ReminderUC: mockusecase.NewMockReminderUsecase(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule")
}

func TestNewScheduler_RejectsImplicitTimezone(t *testing.T) {
	cfg := newTestConfig("0 21 * * *")
	cfg.Reminder.Timezone = "Local"

	_, err := NewScheduler(SchedulerParams{
		Lc:         fxtest.NewLifecycle(t),
		Cfg:        cfg,
		Logger:     discardLogger(),
		ReminderUC: mockusecase.NewMockReminderUsecase(t),
	})

	require.Error(t, err)
}

func TestScheduler_DisabledScheduleIsIdle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(SchedulerParams{
		Lc:         lc,
		Cfg:        newTestConfig(""),
		Logger:     discardLogger(),
		ReminderUC: mockusecase.NewMockReminderUsecase(t),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))

	s, ok := d.(*scheduler)
	require.True(t, ok)
	assert.Empty(t, s.cron.Entries())
	lc.RequireStop()
}

func TestScheduler_RegistersJobInReferenceTimezone(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(SchedulerParams{
		Lc:         lc,
		Cfg:        newTestConfig("0 21 * * *"),
		Logger:     discardLogger(),
		ReminderUC: mockusecase.NewMockReminderUsecase(t),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))

	s := d.(*scheduler)
	entries := s.cron.Entries()
	require.Len(t, entries, 1)

	sp, err := time.LoadLocation(config.DefaultTimezone)
	require.NoError(t, err)
	next := entries[0].Next.In(sp)
	assert.Equal(t, 21, next.Hour())
	assert.Equal(t, 0, next.Minute())

	lc.RequireStop()
}

func TestScheduler_RunOnceCarriesRequestScope(t *testing.T) {
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().
		RunDailyReminders(mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()

			return hasDeadline &&
				deliverycontext.GetRequestIDFromContext(ctx) != "" &&
				deliverycontext.GetTickSource(ctx) == constants.TickSourceCron &&
				deliverycontext.GetLogger(ctx) != nil
		})).
		Return(&entity.ReminderReport{Success: true}, nil).
		Once()

	s := &scheduler{runTimeout: time.Minute, reminderUC: reminderUC, logger: discardLogger()}
	s.tick()
}

func TestScheduler_RunFailureIsLoggedNotPanicked(t *testing.T) {
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().
		RunDailyReminders(mock.Anything).
		Return(nil, errors.New("store down")).
		Once()

	s := &scheduler{runTimeout: time.Minute, reminderUC: reminderUC, logger: discardLogger()}

	assert.NotPanics(t, func() { s.runOnce(context.Background()) })
}
