// Package ledger records which users already received the daily reminder.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"ignite/config"
	"ignite/internal/domain/entity"
	"ignite/internal/domain/lifecycle"
	"ignite/internal/domain/service"
	"ignite/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const keyPrefix = "reminder:"

type redisLedger struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisLedger creates a ledger whose marks expire after ttl.
func NewRedisLedger(client redis.Cmdable, ttl time.Duration) service.ReminderLedger {
	return &redisLedger{
		client: client,
		ttl:    ttl,
	}
}

func ledgerKey(date entity.CalendarDate, userID uuid.UUID) string {
	return keyPrefix + date.String() + ":" + userID.String()
}

func (l *redisLedger) Claim(ctx context.Context, date entity.CalendarDate, userID uuid.UUID) (bool, error) {
	claimed, err := l.client.SetNX(ctx, ledgerKey(date, userID), "1", l.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis setnx")
	}

	return claimed, nil
}

func (l *redisLedger) Release(ctx context.Context, date entity.CalendarDate, userID uuid.UUID) error {
	if err := l.client.Del(ctx, ledgerKey(date, userID)).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}

// noopLedger grants every claim, so every run notifies every user who has not trained.
type noopLedger struct{}

func (noopLedger) Claim(context.Context, entity.CalendarDate, uuid.UUID) (bool, error) {
	return true, nil
}

func (noopLedger) Release(context.Context, entity.CalendarDate, uuid.UUID) error {
	return nil
}

// NewNoopLedger returns a ledger that disables same-day dedup.
func NewNoopLedger() service.ReminderLedger {
	return noopLedger{}
}

// Params defines the parameters required for the ledger
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the Redis ledger when dedup is enabled, otherwise the no-op ledger.
func New(params Params) (service.ReminderLedger, error) {
	reminderCfg := params.Config.Reminder
	if reminderCfg == nil || !reminderCfg.Dedup.Enabled {
		params.Logger.Info("Reminder dedup disabled, repeated runs may notify twice")

		return NewNoopLedger(), nil
	}

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis address is required when reminder dedup is enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Reminder ledger connected", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLedger(client, reminderCfg.Dedup.TTL), nil
}
