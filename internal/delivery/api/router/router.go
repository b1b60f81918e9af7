// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ignite/config"
	"ignite/internal/delivery/api/middleware"
	"ignite/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReminderHandler     *handler.ReminderHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PushClientHandler   *handler.PushClientHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	reminderHandler     *handler.ReminderHandler
	subscriptionHandler *handler.SubscriptionHandler
	pushClientHandler   *handler.PushClientHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reminderHandler:     params.ReminderHandler,
		subscriptionHandler: params.SubscriptionHandler,
		pushClientHandler:   params.PushClientHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Service worker, also served at the legacy /push path
	e.GET("/sw.js", r.pushClientHandler.ServiceWorker)
	e.GET("/push", r.pushClientHandler.ServiceWorker)

	notifications := e.Group("/api/notifications")
	{
		// Authenticated by the cron bearer secret inside the handler, so the order of checks is fixed
		notifications.GET("/cron-reminders", r.reminderHandler.TriggerReminders)
		notifications.GET("/vapid-public-key", r.pushClientHandler.VAPIDPublicKey)
	}

	subscribe := notifications.Group("/subscribe")
	subscribe.Use(r.authMiddleware.Authenticate)
	{
		subscribe.POST("", r.subscriptionHandler.Subscribe)
		subscribe.DELETE("", r.subscriptionHandler.Unsubscribe)
		subscribe.GET("", r.subscriptionHandler.GetSubscription)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
}
