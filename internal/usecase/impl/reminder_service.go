package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/calendar"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/domain/repository"
	"ignite/internal/domain/service"
	"ignite/internal/usecase"
	"ignite/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type reminderService struct {
	logger         *slog.Logger
	subscriberRepo repository.SubscriberRepository
	workoutRepo    repository.WorkoutRepository
	sender         service.PushSender
	ledger         service.ReminderLedger
	metrics        service.ReminderMetrics
	location       *time.Location
	clock          calendar.Clock
	payload        []byte
	pushOptions    service.PushOptions
	maxConcurrency int
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	SubscriberRepo repository.SubscriberRepository
	WorkoutRepo    repository.WorkoutRepository
	Ledger         service.ReminderLedger
	Metrics        service.ReminderMetrics
	// Sender is nil when no push channel has credentials
	Sender service.PushSender `optional:"true"`
	Clock  calendar.Clock     `optional:"true"`
}

// NewReminderService creates the daily reminder scheduler
func NewReminderService(params ReminderServiceParams) (usecase.ReminderUsecase, error) {
	reminderCfg := params.Config.Reminder
	if reminderCfg == nil {
		return nil, errors.New("reminder configuration is missing")
	}

	location, err := calendar.LoadLocation(reminderCfg.Timezone)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(entity.NotificationPayload{
		Title: reminderCfg.Title,
		Body:  reminderCfg.Body,
		URL:   reminderCfg.URL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode reminder payload")
	}

	clock := params.Clock
	if clock == nil {
		clock = calendar.SystemClock
	}

	return &reminderService{
		logger:         params.Logger,
		subscriberRepo: params.SubscriberRepo,
		workoutRepo:    params.WorkoutRepo,
		sender:         params.Sender,
		ledger:         params.Ledger,
		metrics:        params.Metrics,
		location:       location,
		clock:          clock,
		payload:        payload,
		pushOptions: service.PushOptions{
			TTL:     reminderCfg.TTL,
			Urgency: reminderCfg.Urgency,
		},
		maxConcurrency: reminderCfg.MaxConcurrency,
	}, nil
}

// RunDailyReminders notifies every subscriber who has not logged a workout today
func (s *reminderService) RunDailyReminders(ctx context.Context) (*entity.ReminderReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.sender == nil {
		return nil, domainerrors.ErrConfigurationMissing.WrapMessage("no push channel configured")
	}

	started := time.Now()
	today := calendar.ReferenceDate(s.clock(), s.location)

	report, err := s.run(ctx, logger, today)
	s.metrics.ObserveRun(time.Since(started), err == nil)
	if err != nil {
		return nil, err
	}

	logger.Info("Reminder run finished",
		slog.String("date", today.String()),
		slog.Int("total_subscribers", report.TotalSubscribers),
		slog.Int("users_not_trained", report.UsersNotTrained),
		slog.Int("notifications_sent", report.NotificationsSent),
		slog.Int("subscriptions_removed", report.SubscriptionsRemoved),
		slog.Int("delivery_failures", report.DeliveryFailures),
		slog.Int("skipped", report.Skipped),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)

	return report, nil
}

func (s *reminderService) run(ctx context.Context, logger *slog.Logger, today entity.CalendarDate) (*entity.ReminderReport, error) {
	subscribers, err := s.subscriberRepo.FindAllSubscribers(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load push subscriptions")
	}

	trainedIDs, err := s.workoutRepo.FindUserIDsTrainedOn(ctx, today)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load today's workouts")
	}

	pending := usersNotTrained(subscribers, trainedIDs)

	report := &entity.ReminderReport{
		Success:          true,
		Date:             today,
		TotalSubscribers: len(subscribers),
		UsersTrained:     len(subscribers) - len(pending),
		UsersNotTrained:  len(pending),
	}

	report.Tally(s.dispatchAll(ctx, logger, today, pending))

	return report, nil
}

// usersNotTrained returns the subscribers whose user id has no workout logged, in input order.
func usersNotTrained(subscribers []*entity.Subscriber, trainedIDs []uuid.UUID) []*entity.Subscriber {
	trained := make(map[uuid.UUID]struct{}, len(trainedIDs))
	for _, id := range trainedIDs {
		trained[id] = struct{}{}
	}

	result := make([]*entity.Subscriber, 0, len(subscribers))
	for _, sub := range subscribers {
		if _, ok := trained[sub.UserID]; ok {
			continue
		}
		result = append(result, sub)
	}

	return result
}

// dispatchAll sends to every subscriber and waits for all of them. A failure never cancels the others.
func (s *reminderService) dispatchAll(ctx context.Context, logger *slog.Logger, today entity.CalendarDate, subscribers []*entity.Subscriber) []entity.ReminderDispatch {
	results := make([]entity.ReminderDispatch, len(subscribers))

	var group errgroup.Group
	if s.maxConcurrency > 0 {
		group.SetLimit(s.maxConcurrency)
	}

	for idx, sub := range subscribers {
		group.Go(func() error {
			results[idx] = s.dispatchOne(ctx, logger, today, sub)

			return nil
		})
	}

	_ = group.Wait()

	return results
}

func (s *reminderService) dispatchOne(ctx context.Context, logger *slog.Logger, today entity.CalendarDate, sub *entity.Subscriber) entity.ReminderDispatch {
	dispatch := entity.ReminderDispatch{UserID: sub.UserID}
	defer func() { s.metrics.ObserveDispatch(dispatch.Outcome) }()

	logger = logger.With(
		slog.String("user_id", sub.UserID.String()),
		slog.String("endpoint", sub.Endpoint.ShortName()),
	)

	claimed, err := s.ledger.Claim(ctx, today, sub.UserID)
	held := err == nil
	if err != nil {
		logger.Warn("Reminder ledger unavailable, sending anyway", slog.Any("error", err))
	} else if !claimed {
		dispatch.Outcome = entity.DispatchSkipped

		return dispatch
	}

	err = s.sender.Send(ctx, sub.Endpoint, s.payload, s.pushOptions)
	switch {
	case err == nil:
		dispatch.Outcome = entity.DispatchDelivered

	case service.IsSubscriptionGone(err):
		dispatch.Outcome = entity.DispatchPermanentlyInvalid
		dispatch.Err = err
		if delErr := s.subscriberRepo.DeleteSubscriberByUserID(ctx, sub.UserID); delErr != nil {
			logger.Warn("Failed to delete expired push subscription", slog.Any("error", delErr))
		} else {
			dispatch.Removed = true
			logger.Info("Removed expired push subscription", slog.Any("reason", err))
		}

	default:
		dispatch.Outcome = entity.DispatchTransientFailure
		dispatch.Err = err
		logger.Warn("Push delivery failed", slog.Any("error", err))
	}

	// A later run may retry users whose reminder did not go out
	if held && dispatch.Outcome != entity.DispatchDelivered {
		if relErr := s.ledger.Release(ctx, today, sub.UserID); relErr != nil {
			logger.Warn("Failed to release reminder ledger slot", slog.Any("error", relErr))
		}
	}

	return dispatch
}
