package middleware

import (
	"net/http"
	"time"

	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/errors"
	"ignite/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	manager *metrics.Manager
}

func NewMetricsMiddleware(manager *metrics.Manager) *MetricsMiddleware {
	return &MetricsMiddleware{manager: manager}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written the response yet.
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &httpErr):
				status = httpErr.Code
			case status < http.StatusBadRequest:
				status = statusFromError(err)
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.manager.ObserveRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

func statusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
