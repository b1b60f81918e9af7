package handler

import (
	"log/slog"
	"net/http"

	"ignite/internal/delivery/api/middleware"
	"ignite/internal/delivery/api/response"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler registers and removes the caller's push subscription
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest is PushSubscription.toJSON() from the browser, or an FCM registration token.
type SubscribeRequest struct {
	Endpoint       string        `json:"endpoint" validate:"omitempty,url,startswith=https://"`
	ExpirationTime *int64        `json:"expirationTime"`
	Keys           SubscribeKeys `json:"keys"`
	FCMToken       string        `json:"fcmToken" validate:"omitempty,max=4096"`
}

// SubscribeKeys are the client's payload encryption keys
type SubscribeKeys struct {
	P256dh string `json:"p256dh" validate:"omitempty,max=256"`
	Auth   string `json:"auth" validate:"omitempty,max=256"`
}

func (r *SubscribeRequest) toEndpoint() entity.PushEndpoint {
	return entity.PushEndpoint{
		Endpoint:       r.Endpoint,
		ExpirationTime: r.ExpirationTime,
		Keys: entity.PushKeys{
			P256dh: r.Keys.P256dh,
			Auth:   r.Keys.Auth,
		},
		FCMToken: r.FCMToken,
	}
}

// Subscribe upserts the caller's push subscription
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrSessionRequired
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrSubscriptionInvalid.WithDetails("body must be a push subscription JSON object")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if _, err := h.subscriptionUC.RegisterSubscription(c.Request().Context(), userID, req.toEndpoint()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// Unsubscribe deletes the caller's push subscription
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrSessionRequired
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// GetSubscription returns the caller's stored subscription
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrSessionRequired
	}

	subscriber, err := h.subscriptionUC.GetSubscription(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriber)
}
