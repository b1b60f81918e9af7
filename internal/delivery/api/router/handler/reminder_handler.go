package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"ignite/config"
	"ignite/internal/delivery/api/response"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/constants"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/errors"
	"ignite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// ReminderHandler exposes the externally scheduled reminder trigger.
type ReminderHandler struct {
	expectedAuth string
	configured   bool
	reminderUC   usecase.ReminderUsecase
	logger       *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	secret := ""
	if params.Config.Cron != nil {
		secret = strings.TrimSpace(params.Config.Cron.Secret)
	}

	return &ReminderHandler{
		expectedAuth: "Bearer " + secret,
		configured:   secret != "" && params.Config.PushConfigured(),
		reminderUC:   params.ReminderUC,
		logger:       params.Logger,
	}
}

// TriggerReminders runs one reminder pass. The caller must send "Authorization: Bearer <cron secret>".
func (h *ReminderHandler) TriggerReminders(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if !h.configured {
		logger.Error("Reminder trigger called without cron secret or push credentials")

		return response.Plain(c, http.StatusInternalServerError, domainerrors.ErrConfigurationMissing.Message())
	}

	got := c.Request().Header.Get(echo.HeaderAuthorization)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.expectedAuth)) != 1 {
		logger.Warn("Rejected reminder trigger", slog.String("remote_ip", c.RealIP()))

		return response.Plain(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.Message())
	}

	ctx, logger = deliverycontext.WithRun(ctx, h.logger, constants.TickSourceHTTP)
	c.SetRequest(c.Request().WithContext(ctx))

	report, err := h.reminderUC.RunDailyReminders(ctx)
	if err != nil {
		logger.Error("Reminder run failed", slog.Any("error", err))

		status := http.StatusInternalServerError
		message := domainerrors.ErrInternalError.Message()
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
			status = appErr.HTTPCode()
			message = appErr.Message()
		}

		return response.Plain(c, status, message)
	}

	return c.JSON(http.StatusOK, report)
}
