package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, logger *slog.Logger, header string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/notifications/cron-reminders", handler)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/cron-reminders", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware_ReusesCallerID(t *testing.T) {
	var seen string
	rec := serve(t, slog.New(slog.DiscardHandler), "cron-job-42", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, "cron-job-42", seen)
	assert.Equal(t, "cron-job-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedID(t *testing.T) {
	var seen string
	rec := serve(t, slog.New(slog.DiscardHandler), "bad id\twith tab", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsThroughRunScope(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	serve(t, logger, "req-7", func(c echo.Context) error {
		ctx, _ := deliverycontext.WithRun(c.Request().Context(), logger, "http")
		c.SetRequest(c.Request().WithContext(ctx))

		return c.NoContent(http.StatusUnauthorized)
	})

	logged := buf.String()
	assert.Contains(t, logged, `"msg":"HTTP Request"`)
	assert.Contains(t, logged, `"request_id":"req-7"`)
	assert.Contains(t, logged, `"tick_source":"http"`)
	assert.Contains(t, logged, `"route":"/api/notifications/cron-reminders"`)
	assert.Contains(t, logged, `"level":"WARN"`)
}
