package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/domain/repository"
	"ignite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	logger         *slog.Logger
	subscriberRepo repository.SubscriberRepository
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	Logger         *slog.Logger
	SubscriberRepo repository.SubscriberRepository
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		logger:         params.Logger,
		subscriberRepo: params.SubscriberRepo,
	}
}

// RegisterSubscription validates the endpoint and upserts it as the user's only subscription
func (s *subscriptionService) RegisterSubscription(ctx context.Context, userID uuid.UUID, endpoint entity.PushEndpoint) (*entity.Subscriber, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrSessionRequired
	}
	if !endpoint.Valid() {
		return nil, domainerrors.ErrSubscriptionInvalid.WithDetails("endpoint must be https with p256dh and auth keys, or an FCM token")
	}

	now := time.Now()
	subscriber := &entity.Subscriber{
		UserID:    userID,
		Endpoint:  endpoint,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subscriberRepo.UpsertSubscriber(ctx, subscriber); err != nil {
		return nil, errors.Wrap(err, "failed to save push subscription")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Push subscription registered",
		slog.String("user_id", userID.String()),
		slog.String("endpoint", endpoint.ShortName()),
	)

	return subscriber, nil
}

// Unsubscribe removes the user's subscription
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrSessionRequired
	}

	if err := s.subscriberRepo.DeleteSubscriberByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}

// GetSubscription returns the user's current subscription
func (s *subscriptionService) GetSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscriber, error) {
	subscriber, err := s.subscriberRepo.FindSubscriberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find push subscription")
	}

	return subscriber, nil
}
