// Package context carries the request scope of a reminder run: request id, tick source and logger.
package context

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID  ContextKey = "request_id"
	KeyTickSource ContextKey = "tick_source"
	KeyLogger     ContextKey = "logger"

	HeaderXRequestID = "X-Request-Id"

	// maxRequestIDLen bounds client supplied ids before they reach the logs
	maxRequestIDLen = 128
)

// GetRequestID returns the request id stored on c, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on c for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// SanitizeRequestID returns id when it is a short printable token, otherwise "".
func SanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}

	return id
}

func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetTickSource reports what triggered the reminder run in ctx, or "" outside a run.
func GetTickSource(ctx context.Context) string {
	if source, ok := ctx.Value(KeyTickSource).(string); ok {
		return source
	}

	return ""
}

func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithRequestScope attaches requestID and a logger tagged with it.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// WithRun scopes ctx to one reminder run started by source. An existing request
// scope is extended; without one a new request id is minted.
func WithRun(ctx context.Context, fallback *slog.Logger, source string) (context.Context, *slog.Logger) {
	logger := GetLogger(ctx)
	if GetRequestIDFromContext(ctx) == "" || logger == nil {
		requestID := GetRequestIDFromContext(ctx)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx, logger = WithRequestScope(ctx, fallback, requestID)
	}

	logger = logger.With(slog.String("tick_source", source))
	ctx = context.WithValue(ctx, KeyTickSource, source)

	return WithLogger(ctx, logger), logger
}
