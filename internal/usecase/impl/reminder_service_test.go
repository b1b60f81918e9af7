package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ignite/config"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/domain/service"
	mockRepo "ignite/internal/mocks/repository"
	mockSvc "ignite/internal/mocks/service"
	"ignite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 01:30 UTC on the 16th is 22:30 on the 15th in São Paulo.
var pinnedNow = time.Date(2024, 3, 16, 1, 30, 0, 0, time.UTC)

const pinnedToday = entity.CalendarDate("2024-03-15")

type reminderFixture struct {
	service        usecase.ReminderUsecase
	subscriberRepo *mockRepo.MockSubscriberRepository
	workoutRepo    *mockRepo.MockWorkoutRepository
	sender         *mockSvc.MockPushSender
	ledger         *mockSvc.MockReminderLedger
	metrics        *mockSvc.MockReminderMetrics
}

func testReminderConfig(maxConcurrency int) *config.Config {
	return &config.Config{
		Reminder: &config.ReminderConfig{
			Timezone:       config.DefaultTimezone,
			Title:          config.DefaultReminderTitle,
			Body:           config.DefaultReminderBody,
			URL:            config.DefaultReminderURL,
			TTL:            config.DefaultReminderTTL,
			Urgency:        config.DefaultReminderUrgency,
			MaxConcurrency: maxConcurrency,
		},
	}
}

func createTestReminderService(t *testing.T, cfg *config.Config, withSender bool) *reminderFixture {
	t.Helper()

	fx := &reminderFixture{
		subscriberRepo: mockRepo.NewMockSubscriberRepository(t),
		workoutRepo:    mockRepo.NewMockWorkoutRepository(t),
		sender:         mockSvc.NewMockPushSender(t),
		ledger:         mockSvc.NewMockReminderLedger(t),
		metrics:        mockSvc.NewMockReminderMetrics(t),
	}
	fx.metrics.EXPECT().ObserveDispatch(mock.Anything).Return().Maybe()
	fx.metrics.EXPECT().ObserveRun(mock.Anything, mock.Anything).Return().Maybe()

	params := ReminderServiceParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
		SubscriberRepo: fx.subscriberRepo,
		WorkoutRepo:    fx.workoutRepo,
		Ledger:         fx.ledger,
		Metrics:        fx.metrics,
		Clock:          func() time.Time { return pinnedNow },
	}
	if withSender {
		params.Sender = fx.sender
	}

	svc, err := NewReminderService(params)
	require.NoError(t, err)
	fx.service = svc

	return fx
}

func newSubscriber(endpoint string) *entity.Subscriber {
	return &entity.Subscriber{
		UserID: uuid.New(),
		Endpoint: entity.PushEndpoint{
			Endpoint: endpoint,
			Keys:     entity.PushKeys{P256dh: "p256dh", Auth: "auth"},
		},
	}
}

func (fx *reminderFixture) ledgerAllowsEveryone() {
	fx.ledger.EXPECT().Claim(mock.Anything, pinnedToday, mock.Anything).Return(true, nil).Maybe()
	fx.ledger.EXPECT().Release(mock.Anything, pinnedToday, mock.Anything).Return(nil).Maybe()
}

func TestReminderService_NotifiesOnlyUsersWhoHaveNotTrained(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	a := newSubscriber("https://push.example/a")
	b := newSubscriber("https://push.example/b")
	c := newSubscriber("https://push.example/c")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{a, b, c}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return([]uuid.UUID{b.UserID}, nil)
	fx.ledgerAllowsEveryone()

	var sentMu sync.Mutex
	sent := map[string][]byte{}
	fx.sender.EXPECT().
		Send(ctx, mock.AnythingOfType("entity.PushEndpoint"), mock.Anything, service.PushOptions{TTL: 24 * time.Hour, Urgency: "high"}).
		RunAndReturn(func(_ context.Context, endpoint entity.PushEndpoint, payload []byte, _ service.PushOptions) error {
			sentMu.Lock()
			defer sentMu.Unlock()
			sent[endpoint.Endpoint] = payload

			return nil
		}).
		Times(2)

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, pinnedToday, report.Date)
	assert.Equal(t, 3, report.TotalSubscribers)
	assert.Equal(t, 1, report.UsersTrained)
	assert.Equal(t, 2, report.UsersNotTrained)
	assert.Equal(t, 2, report.NotificationsSent)
	assert.Equal(t, 0, report.SubscriptionsRemoved)

	require.Contains(t, sent, "https://push.example/a")
	require.Contains(t, sent, "https://push.example/c")
	assert.NotContains(t, sent, "https://push.example/b")

	var payload entity.NotificationPayload
	require.NoError(t, json.Unmarshal(sent["https://push.example/a"], &payload))
	assert.Equal(t, "A chama está apagando! 🔥", payload.Title)
	assert.Equal(t, "Você ainda não registrou seu treino de hoje. Mantenha sua meta viva!", payload.Body)
	assert.Equal(t, "/?action=open_mood_selector", payload.URL)
}

func TestReminderService_DeletesGoneSubscriptions(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	gone := newSubscriber("https://push.example/gone")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{gone}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledgerAllowsEveryone()
	fx.sender.EXPECT().Send(ctx, gone.Endpoint, mock.Anything, mock.Anything).
		Return(&service.PushStatusError{StatusCode: 410})
	fx.subscriberRepo.EXPECT().DeleteSubscriberByUserID(ctx, gone.UserID).Return(nil).Once()

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.UsersNotTrained)
	assert.Equal(t, 0, report.NotificationsSent)
	assert.Equal(t, 1, report.SubscriptionsRemoved)
}

func TestReminderService_TransientFailureKeepsSubscription(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	sub := newSubscriber("https://push.example/flaky")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{sub}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledgerAllowsEveryone()
	fx.sender.EXPECT().Send(ctx, sub.Endpoint, mock.Anything, mock.Anything).
		Return(&service.PushStatusError{StatusCode: 503})

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.DeliveryFailures)
	assert.Equal(t, 0, report.SubscriptionsRemoved)
	fx.subscriberRepo.AssertNotCalled(t, "DeleteSubscriberByUserID", mock.Anything, mock.Anything)
}

func TestReminderService_ConcurrentOutcomesAreIndependent(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	ok := newSubscriber("https://push.example/ok")
	gone := newSubscriber("https://push.example/gone")
	flaky := newSubscriber("https://push.example/flaky")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{ok, gone, flaky}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return([]uuid.UUID{}, nil)
	fx.ledgerAllowsEveryone()

	// All three sends must be in flight before any of them returns.
	var started sync.WaitGroup
	started.Add(3)
	release := make(chan struct{})
	go func() {
		started.Wait()
		close(release)
	}()

	outcomes := map[string]error{
		ok.Endpoint.Endpoint:    nil,
		gone.Endpoint.Endpoint:  &service.PushStatusError{StatusCode: 404},
		flaky.Endpoint.Endpoint: errors.New("connection reset"),
	}
	fx.sender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, endpoint entity.PushEndpoint, _ []byte, _ service.PushOptions) error {
			started.Done()
			<-release

			return outcomes[endpoint.Endpoint]
		}).
		Times(3)
	fx.subscriberRepo.EXPECT().DeleteSubscriberByUserID(ctx, gone.UserID).Return(nil).Once()

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.UsersNotTrained)
	assert.Equal(t, 1, report.NotificationsSent)
	assert.Equal(t, 1, report.SubscriptionsRemoved)
	assert.Equal(t, 1, report.DeliveryFailures)
}

func TestReminderService_DeleteFailureDoesNotAbortRun(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	gone := newSubscriber("https://push.example/gone")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{gone}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledgerAllowsEveryone()
	fx.sender.EXPECT().Send(ctx, gone.Endpoint, mock.Anything, mock.Anything).
		Return(&service.PushStatusError{StatusCode: 410})
	fx.subscriberRepo.EXPECT().DeleteSubscriberByUserID(ctx, gone.UserID).Return(errors.New("db down"))

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 0, report.SubscriptionsRemoved)
}

func TestReminderService_SkipsUsersClaimedByAnotherRun(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	done := newSubscriber("https://push.example/done")
	fresh := newSubscriber("https://push.example/fresh")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{done, fresh}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledger.EXPECT().Claim(ctx, pinnedToday, done.UserID).Return(false, nil)
	fx.ledger.EXPECT().Claim(ctx, pinnedToday, fresh.UserID).Return(true, nil)
	fx.sender.EXPECT().Send(ctx, fresh.Endpoint, mock.Anything, mock.Anything).Return(nil).Once()

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.UsersNotTrained)
	assert.Equal(t, 1, report.NotificationsSent)
	assert.Equal(t, 1, report.Skipped)
	fx.ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderService_ClaimsBeforeSending(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	sub := newSubscriber("https://push.example/a")

	var order []string
	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{sub}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledger.EXPECT().Claim(ctx, pinnedToday, sub.UserID).
		Run(func(context.Context, entity.CalendarDate, uuid.UUID) { order = append(order, "claim") }).
		Return(true, nil).Once()
	fx.sender.EXPECT().Send(ctx, sub.Endpoint, mock.Anything, mock.Anything).
		Run(func(context.Context, entity.PushEndpoint, []byte, service.PushOptions) { order = append(order, "send") }).
		Return(nil).Once()

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"claim", "send"}, order)
	assert.Equal(t, 1, report.NotificationsSent)
	fx.ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderService_ReleasesClaimWhenNotDelivered(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	flaky := newSubscriber("https://push.example/flaky")
	gone := newSubscriber("https://push.example/gone")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{flaky, gone}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledger.EXPECT().Claim(ctx, pinnedToday, mock.Anything).Return(true, nil).Times(2)
	fx.sender.EXPECT().Send(ctx, flaky.Endpoint, mock.Anything, mock.Anything).Return(errors.New("503 from push service"))
	fx.sender.EXPECT().Send(ctx, gone.Endpoint, mock.Anything, mock.Anything).
		Return(&service.PushStatusError{StatusCode: 410})
	fx.subscriberRepo.EXPECT().DeleteSubscriberByUserID(ctx, gone.UserID).Return(nil)
	fx.ledger.EXPECT().Release(ctx, pinnedToday, flaky.UserID).Return(nil).Once()
	fx.ledger.EXPECT().Release(ctx, pinnedToday, gone.UserID).Return(errors.New("redis down")).Once()

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, report.NotificationsSent)
	assert.Equal(t, 1, report.DeliveryFailures)
	assert.Equal(t, 1, report.SubscriptionsRemoved)
}

func TestReminderService_LedgerErrorStillSends(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	sub := newSubscriber("https://push.example/a")

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{sub}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledger.EXPECT().Claim(ctx, pinnedToday, sub.UserID).Return(false, errors.New("redis down"))
	fx.sender.EXPECT().Send(ctx, sub.Endpoint, mock.Anything, mock.Anything).Return(errors.New("timeout"))

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.DeliveryFailures)
	fx.ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestReminderService_NoSubscribers(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return([]uuid.UUID{uuid.New()}, nil)

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.ReminderReport{Success: true, Date: pinnedToday}, report)
}

func TestReminderService_StoreFailureAbortsRun(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return(nil, errors.New("connection refused"))

	report, err := fx.service.RunDailyReminders(ctx)
	require.Error(t, err)
	assert.Nil(t, report)

	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestReminderService_WorkoutStoreFailureAbortsRun(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), true)
	ctx := context.Background()

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return([]*entity.Subscriber{newSubscriber("https://push.example/a")}, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, errors.New("timeout"))

	report, err := fx.service.RunDailyReminders(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestReminderService_WithoutChannelDoesNotTouchStore(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(0), false)

	report, err := fx.service.RunDailyReminders(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrConfigurationMissing)
}

func TestReminderService_RespectsConcurrencyLimit(t *testing.T) {
	fx := createTestReminderService(t, testReminderConfig(2), true)
	ctx := context.Background()

	subscribers := make([]*entity.Subscriber, 0, 6)
	for range 6 {
		subscribers = append(subscribers, newSubscriber("https://push.example/"+uuid.NewString()))
	}

	fx.subscriberRepo.EXPECT().FindAllSubscribers(ctx).Return(subscribers, nil)
	fx.workoutRepo.EXPECT().FindUserIDsTrainedOn(ctx, pinnedToday).Return(nil, nil)
	fx.ledgerAllowsEveryone()

	var inFlight, peak atomic.Int32
	fx.sender.EXPECT().Send(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.PushEndpoint, []byte, service.PushOptions) error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		}).
		Times(6)

	report, err := fx.service.RunDailyReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, report.NotificationsSent)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestNewReminderService_RejectsImplicitTimezone(t *testing.T) {
	cfg := testReminderConfig(0)
	cfg.Reminder.Timezone = "Local"

	_, err := NewReminderService(ReminderServiceParams{Config: cfg})
	assert.Error(t, err)
}

func TestUsersNotTrained(t *testing.T) {
	a := newSubscriber("https://push.example/a")
	b := newSubscriber("https://push.example/b")
	c := newSubscriber("https://push.example/c")

	tests := []struct {
		name    string
		trained []uuid.UUID
		want    []*entity.Subscriber
	}{
		{name: "nobody trained", trained: nil, want: []*entity.Subscriber{a, b, c}},
		{name: "duplicates are harmless", trained: []uuid.UUID{b.UserID, b.UserID}, want: []*entity.Subscriber{a, c}},
		{name: "trained users without subscription", trained: []uuid.UUID{uuid.New()}, want: []*entity.Subscriber{a, b, c}},
		{name: "everyone trained", trained: []uuid.UUID{a.UserID, b.UserID, c.UserID}, want: []*entity.Subscriber{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usersNotTrained([]*entity.Subscriber{a, b, c}, tt.trained))
		})
	}
}
