// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/domain/repository"
	"ignite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB, logger *slog.Logger) repository.SubscriberRepository {
	return &subscriberRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSubscriber inserts the subscription or replaces the endpoint of an existing one.
func (repo *subscriberRepository) UpsertSubscriber(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM, err := fromSubscriberDomain(subscriber)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subscription_json", "updated_at"}),
		}).
		Create(subscriberM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isInvalidJSONInput(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrSubscriptionInvalid.WrapMessage("subscription rejected by storage")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push subscription")
	}

	subscriber.CreatedAt = subscriberM.CreatedAt
	subscriber.UpdatedAt = subscriberM.UpdatedAt

	return nil
}

// FindSubscriberByUserID retrieves the subscription of a single user.
func (repo *subscriberRepository) FindSubscriberByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscriber, error) {
	var subscriberM model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find push subscription by user")
	}

	return toSubscriberDomain(&subscriberM)
}

// FindAllSubscribers retrieves every registered subscription.
func (repo *subscriberRepository) FindAllSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	var subscriberModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Select("user_id", "subscription_json", "created_at", "updated_at").
		Find(&subscriberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list push subscriptions")
	}

	return toSubscriberDomains(deliverycontext.GetLoggerOrDefault(ctx, repo.logger), subscriberModels), nil
}

// toSubscriberDomains maps every readable row. A corrupt row is logged and skipped so it cannot hide the others.
func toSubscriberDomains(logger *slog.Logger, subscriberModels []*model.PushSubscriptionModel) []*entity.Subscriber {
	subscribers := make([]*entity.Subscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscriber, err := toSubscriberDomain(subscriberM)
		if err != nil {
			logger.Warn("Skipping unreadable push subscription",
				slog.String("user_id", subscriberM.UserID.String()),
				slog.Any("error", err),
			)

			continue
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers
}

// DeleteSubscriberByUserID removes the subscription of a user. Missing rows are not an error.
func (repo *subscriberRepository) DeleteSubscriberByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push subscription")
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriberDomain converts a GORM PushSubscriptionModel to a domain Subscriber entity.
func toSubscriberDomain(data *model.PushSubscriptionModel) (*entity.Subscriber, error) {
	if data == nil {
		return nil, nil
	}

	var endpoint entity.PushEndpoint
	if err := json.Unmarshal(data.SubscriptionJSON, &endpoint); err != nil {
		return nil, errors.Wrapf(err, "decode subscription_json for user %s", data.UserID)
	}

	return &entity.Subscriber{
		UserID:    data.UserID,
		Endpoint:  endpoint,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromSubscriberDomain converts a domain Subscriber entity to a GORM PushSubscriptionModel.
func fromSubscriberDomain(data *entity.Subscriber) (*model.PushSubscriptionModel, error) {
	if data == nil {
		return nil, errors.New("nil subscriber")
	}

	raw, err := json.Marshal(data.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "encode subscription_json")
	}

	return &model.PushSubscriptionModel{
		UserID:           data.UserID,
		SubscriptionJSON: datatypes.JSON(raw),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}
