package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRun_MintsScopeWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRun(context.Background(), base, "cron")

	requestID := GetRequestIDFromContext(ctx)
	require.NotEmpty(t, requestID)
	assert.Equal(t, "cron", GetTickSource(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	logger.Info("run")
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
	assert.Contains(t, buf.String(), `"tick_source":"cron"`)
}

func TestWithRun_ExtendsExistingRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, _ := WithRequestScope(context.Background(), base, "req-1")
	ctx, logger := WithRun(ctx, slog.New(slog.DiscardHandler), "http")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "http", GetTickSource(ctx))

	logger.Info("run")
	assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))
	assert.Contains(t, buf.String(), `"tick_source":"http"`)
}

func TestWithRun_RequestIDWithoutLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRun(WithRequestID(context.Background(), "from-tick"), base, "pubsub")

	assert.Equal(t, "from-tick", GetRequestIDFromContext(ctx))
	logger.Info("run")
	assert.Contains(t, buf.String(), `"request_id":"from-tick"`)
}

func TestGetTickSource_OutsideRun(t *testing.T) {
	assert.Empty(t, GetTickSource(context.Background()))
}

func TestSanitizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "uuid", in: "0b6f2c1e-8d4a-4a57-9a55-2f3f1b7e9c10", want: "0b6f2c1e-8d4a-4a57-9a55-2f3f1b7e9c10"},
		{name: "trimmed", in: "  abc-1 ", want: "abc-1"},
		{name: "empty", in: ""},
		{name: "newline injection", in: "abc\nlevel=ERROR"},
		{name: "too long", in: strings.Repeat("a", maxRequestIDLen+1)},
		{name: "non ascii", in: "pedido-ção"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeRequestID(tt.in))
		})
	}
}
