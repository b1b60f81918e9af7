package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/constants"
	"ignite/internal/domain/entity"
	domainerrors "ignite/internal/domain/errors"
	"ignite/internal/errors"
	mockusecase "ignite/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCronSecret = "s3cr3t"

func testConfig() *config.Config {
	return &config.Config{
		Cron:  &config.CronConfig{Secret: testCronSecret},
		VAPID: &config.VAPIDConfig{PublicKey: "BPub", PrivateKey: "priv"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func callTrigger(t *testing.T, h *ReminderHandler, authorization string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/cron-reminders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.TriggerReminders(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestTriggerReminders_RejectsBadBearerWithoutRunning(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "wrong secret", authorization: "Bearer nope"},
		{name: "secret without scheme", authorization: testCronSecret},
		{name: "lowercase scheme", authorization: "bearer " + testCronSecret},
		{name: "trailing space", authorization: "Bearer " + testCronSecret + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any call to the usecase fails the test.
			reminderUC := mockusecase.NewMockReminderUsecase(t)
			h := NewReminderHandler(ReminderHandlerParams{Config: testConfig(), Logger: discardLogger(), ReminderUC: reminderUC})

			rec, body := callTrigger(t, h, tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, map[string]any{"error": "Unauthorized"}, body)
		})
	}
}

func TestTriggerReminders_ConfigurationCheckedBeforeAuth(t *testing.T) {
	cfg := testConfig()
	cfg.VAPID = nil

	h := NewReminderHandler(ReminderHandlerParams{Config: cfg, Logger: discardLogger(), ReminderUC: mockusecase.NewMockReminderUsecase(t)})

	rec, body := callTrigger(t, h, "Bearer wrong")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Ambiente não configurado.", body["error"])
}

func TestTriggerReminders_EmptySecretIsMisconfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Cron.Secret = "  "

	h := NewReminderHandler(ReminderHandlerParams{Config: cfg, Logger: discardLogger(), ReminderUC: mockusecase.NewMockReminderUsecase(t)})

	// "Bearer " must never authenticate against an unset secret.
	rec, _ := callTrigger(t, h, "Bearer ")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTriggerReminders_ReturnsFlatReport(t *testing.T) {
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().RunDailyReminders(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetTickSource(ctx) == constants.TickSourceHTTP &&
			deliverycontext.GetRequestIDFromContext(ctx) != ""
	})).Return(&entity.ReminderReport{
		Success:              true,
		Date:                 "2024-03-15",
		TotalSubscribers:     3,
		UsersTrained:         1,
		UsersNotTrained:      2,
		NotificationsSent:    1,
		SubscriptionsRemoved: 1,
	}, nil).Once()

	h := NewReminderHandler(ReminderHandlerParams{Config: testConfig(), Logger: discardLogger(), ReminderUC: reminderUC})

	rec, body := callTrigger(t, h, "Bearer "+testCronSecret)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "2024-03-15", body["date"])
	assert.InDelta(t, 3, body["totalSubscribers"], 0)
	assert.InDelta(t, 2, body["usersNotTrained"], 0)
	assert.InDelta(t, 1, body["notificationsSent"], 0)
	assert.InDelta(t, 1, body["subscriptionsRemoved"], 0)
}

func TestTriggerReminders_StoreFailureIs500(t *testing.T) {
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().RunDailyReminders(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "list subscribers")).
		Once()

	h := NewReminderHandler(ReminderHandlerParams{Config: testConfig(), Logger: discardLogger(), ReminderUC: reminderUC})

	rec, body := callTrigger(t, h, "Bearer "+testCronSecret)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Falha ao executar operação no banco de dados", body["error"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestTriggerReminders_UnknownErrorHidesInternals(t *testing.T) {
	reminderUC := mockusecase.NewMockReminderUsecase(t)
	reminderUC.EXPECT().RunDailyReminders(mock.Anything).Return(nil, errors.New("boom")).Once()

	h := NewReminderHandler(ReminderHandlerParams{Config: testConfig(), Logger: discardLogger(), ReminderUC: reminderUC})

	rec, body := callTrigger(t, h, "Bearer "+testCronSecret)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body["error"])
}
