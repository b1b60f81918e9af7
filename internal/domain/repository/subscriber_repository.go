// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ignite/internal/domain/entity"
	"ignite/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriberNotFound is returned when no subscription exists for a user.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// SubscriberRepository defines the persistence operations for push subscriptions.
type SubscriberRepository interface {
	// UpsertSubscriber stores the subscriber, replacing any previous endpoint for the same user.
	UpsertSubscriber(ctx context.Context, subscriber *entity.Subscriber) error

	// FindSubscriberByUserID retrieves the subscription of a single user.
	FindSubscriberByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscriber, error)

	// FindAllSubscribers retrieves every registered subscriber.
	FindAllSubscribers(ctx context.Context) ([]*entity.Subscriber, error)

	// DeleteSubscriberByUserID removes the subscription of a user.
	// Deleting a missing row is not an error.
	DeleteSubscriberByUserID(ctx context.Context, userID uuid.UUID) error
}
