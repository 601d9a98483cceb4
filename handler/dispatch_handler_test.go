package handler_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"relay-notifier/domain"
	"relay-notifier/handler"
	"relay-notifier/models"
	"relay-notifier/service"
	"relay-notifier/test/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCronSecret = "cron-secret-for-tests"

func testLoggerDispatch() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Only errors in tests
	}))
}

func dispatchRequest(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/dispatch-reminders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestDispatchHandler_HandleDispatch(t *testing.T) {
	t.Run("should reject missing credential before any work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)
		// No expectations: the service must not be touched.

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())
		c, _ := dispatchRequest(t, "")

		err := h.HandleDispatch(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("should reject wrong credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())
		c, _ := dispatchRequest(t, "Bearer wrong-secret")

		err := h.HandleDispatch(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("should reject everything when the secret is unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		h := handler.NewDispatchHandler(dispatcher, "", testLoggerDispatch())
		c, _ := dispatchRequest(t, "Bearer ")

		err := h.HandleDispatch(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("should return the batch summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		sentID := uuid.New()
		failedID := uuid.New()

		dispatcher.EXPECT().DispatchDueReminders(gomock.Any(), gomock.Any()).Return(&service.DispatchResult{
			ProcessedCount: 2,
			SuccessCount:   1,
			ErrorCount:     1,
			Outcomes: []service.ItemOutcome{
				{PostID: sentID, Stage: service.StageSent, MessageID: "msg-1"},
				{PostID: failedID, Stage: service.StageSendFailed, Err: domain.ErrSendFailed},
			},
		}, nil)

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())
		c, rec := dispatchRequest(t, "Bearer "+testCronSecret)

		err := h.HandleDispatch(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.DispatchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, 2, resp.Processed)
		assert.Equal(t, 1, resp.Succeeded)
		assert.Equal(t, 1, resp.Failed)
		require.Len(t, resp.Outcomes, 2)
		assert.Equal(t, sentID.String(), resp.Outcomes[0].PostID)
		assert.Equal(t, "sent", resp.Outcomes[0].Stage)
		assert.Equal(t, "msg-1", resp.Outcomes[0].MessageID)
		assert.Equal(t, "send_failed", resp.Outcomes[1].Stage)
		assert.NotEmpty(t, resp.Outcomes[1].Error)
	})

	t.Run("should return 503 when the store is unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		dispatcher.EXPECT().DispatchDueReminders(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())
		c, _ := dispatchRequest(t, "Bearer "+testCronSecret)

		err := h.HandleDispatch(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
	})

	t.Run("should return an empty outcomes array for an empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		dispatcher.EXPECT().DispatchDueReminders(gomock.Any(), gomock.Any()).Return(&service.DispatchResult{
			Outcomes: []service.ItemOutcome{},
		}, nil)

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())
		c, rec := dispatchRequest(t, "Bearer "+testCronSecret)

		err := h.HandleDispatch(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"outcomes":[]`)
	})
}

func TestDispatchHandler_HandleStats(t *testing.T) {
	t.Run("should reject missing credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/stats", nil)
		rec := httptest.NewRecorder()

		err := h.HandleStats(e.NewContext(req, rec))

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("should return aggregate counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dispatcher := mocks.NewMockReminderDispatchService(ctrl)

		dispatcher.EXPECT().GetStats(gomock.Any(), gomock.Any()).Return(&models.ReminderStatistics{
			ScheduledCount: 4,
			DueNowCount:    1,
			SentCount:      20,
		}, nil)

		h := handler.NewDispatchHandler(dispatcher, testCronSecret, testLoggerDispatch())

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders/stats", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testCronSecret)
		rec := httptest.NewRecorder()

		err := h.HandleStats(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp handler.StatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Scheduled)
		assert.Equal(t, 1, resp.DueNow)
		assert.Equal(t, 20, resp.Sent)
	})
}
