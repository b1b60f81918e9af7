package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRedactSQL_HidesSubscriptionSecrets(t *testing.T) {
	sql := `INSERT INTO "push_subscriptions" ("user_id","subscription_json") VALUES ('6f1c2d8e-3b7a-4c55-9d1e-0a2b3c4d5e6f','{"endpoint":"https://push.example/abc","keys":{"p256dh":"BNc","auth":"tBH"}}')`

	got := redactSQL(sql)

	assert.NotContains(t, got, "tBH")
	assert.NotContains(t, got, "push.example")
	assert.Contains(t, got, "'[subscription]'")
	assert.Contains(t, got, "6f1c2d8e-3b7a-4c55-9d1e-0a2b3c4d5e6f")
}

func TestRedactSQL_Truncates(t *testing.T) {
	got := redactSQL(strings.Repeat("x", maxLoggedSQLLength+10))

	assert.Len(t, got, maxLoggedSQLLength+3)
}

func TestTrace_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	reqLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("conn reset"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "GORM query failed")
}

func TestTrace_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})
	rows := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), rows, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), rows, nil)
	assert.Empty(t, buf.String(), "warn level skips not-found and fast queries")

	l.Trace(context.Background(), time.Now().Add(-time.Second), rows, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), rows, errors.New("boom"))
	assert.Empty(t, buf.String())
}
