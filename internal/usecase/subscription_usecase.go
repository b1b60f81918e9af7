package usecase

import (
	"context"

	"ignite/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the push subscription management use cases
type SubscriptionUsecase interface {
	// RegisterSubscription stores the endpoint for userID, replacing any previous one
	RegisterSubscription(ctx context.Context, userID uuid.UUID, endpoint entity.PushEndpoint) (*entity.Subscriber, error)

	// Unsubscribe removes the user's subscription; removing a missing one succeeds
	Unsubscribe(ctx context.Context, userID uuid.UUID) error

	// GetSubscription returns the user's current subscription
	GetSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscriber, error)
}
