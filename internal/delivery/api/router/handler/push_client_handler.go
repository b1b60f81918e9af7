package handler

import (
	"log/slog"
	"net/http"

	"ignite/config"
	"ignite/internal/delivery/api/response"
	"ignite/internal/errors"
	"ignite/internal/receiver"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const scriptCacheControl = "no-store, no-cache, must-revalidate"

// PushClientHandlerParams holds dependencies for PushClientHandler, injected by Fx.
type PushClientHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// PushClientHandler serves what the browser needs to subscribe and receive reminders.
type PushClientHandler struct {
	script         []byte
	vapidPublicKey string
}

// NewPushClientHandler renders the service worker once at startup.
func NewPushClientHandler(params PushClientHandlerParams) (*PushClientHandler, error) {
	script, err := receiver.Script(receiver.DefaultAppearance())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render service worker")
	}

	publicKey := ""
	if params.Config.VAPID != nil {
		publicKey = params.Config.VAPID.PublicKey
	}
	if publicKey == "" {
		params.Logger.Warn("VAPID public key not configured, browsers cannot subscribe")
	}

	return &PushClientHandler{
		script:         script,
		vapidPublicKey: publicKey,
	}, nil
}

// ServiceWorker serves sw.js. It must never be cached so new versions activate on the next load.
func (h *PushClientHandler) ServiceWorker(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", scriptCacheControl)

	return c.Blob(http.StatusOK, "application/javascript; charset=utf-8", h.script)
}

// VAPIDPublicKey returns the application server key for pushManager.subscribe.
func (h *PushClientHandler) VAPIDPublicKey(c echo.Context) error {
	if h.vapidPublicKey == "" {
		return response.Plain(c, http.StatusNotFound, "VAPID public key not configured")
	}

	return c.JSON(http.StatusOK, map[string]string{"publicKey": h.vapidPublicKey})
}
