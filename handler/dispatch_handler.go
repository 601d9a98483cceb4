package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"relay-notifier/domain"
	"relay-notifier/service"

	"github.com/labstack/echo/v4"
)

// OutcomeResponse reports one reminder's dispatch result.
type OutcomeResponse struct {
	PostID    string `json:"post_id"`
	Stage     string `json:"stage"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DispatchResponse is the batch summary returned to the cron trigger.
type DispatchResponse struct {
	Status    string            `json:"status"`
	Processed int               `json:"processed"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Outcomes  []OutcomeResponse `json:"outcomes"`
}

// StatsResponse reports aggregate reminder counts.
type StatsResponse struct {
	Scheduled int `json:"scheduled"`
	DueNow    int `json:"due_now"`
	Sent      int `json:"sent"`
}

// DispatchHandler exposes the cron-triggered reminder dispatch endpoints.
type DispatchHandler struct {
	dispatcher service.ReminderDispatchService
	cronSecret string
	logger     *slog.Logger
}

// NewDispatchHandler creates a new dispatch handler.
func NewDispatchHandler(dispatcher service.ReminderDispatchService, cronSecret string, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		dispatcher: dispatcher,
		cronSecret: cronSecret,
		logger:     logger,
	}
}

// HandleDispatch handles GET /api/v1/cron/dispatch-reminders requests.
// The shared-secret check runs before any store or mail work.
func (h *DispatchHandler) HandleDispatch(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.authorized(c) {
		h.logger.WarnContext(ctx, "rejected dispatch trigger with invalid credential", "remote_ip", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized").SetInternal(domain.ErrUnauthorized)
	}

	now := time.Now().UTC()

	result, err := h.dispatcher.DispatchDueReminders(ctx, now)
	if err != nil {
		h.logger.ErrorContext(ctx, "dispatch batch aborted", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
	}

	response := DispatchResponse{
		Status:    "ok",
		Processed: result.ProcessedCount,
		Succeeded: result.SuccessCount,
		Failed:    result.ErrorCount,
		Outcomes:  make([]OutcomeResponse, 0, len(result.Outcomes)),
	}

	for _, outcome := range result.Outcomes {
		o := OutcomeResponse{
			PostID:    outcome.PostID.String(),
			Stage:     string(outcome.Stage),
			MessageID: outcome.MessageID,
		}
		if outcome.Err != nil {
			o.Error = outcome.Err.Error()
		}
		response.Outcomes = append(response.Outcomes, o)
	}

	return c.JSON(http.StatusOK, response)
}

// HandleStats handles GET /api/v1/reminders/stats requests.
func (h *DispatchHandler) HandleStats(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.authorized(c) {
		h.logger.WarnContext(ctx, "rejected stats request with invalid credential", "remote_ip", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized").SetInternal(domain.ErrUnauthorized)
	}

	stats, err := h.dispatcher.GetStats(ctx, time.Now().UTC())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load reminder stats", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Scheduled: stats.ScheduledCount,
		DueNow:    stats.DueNowCount,
		Sent:      stats.SentCount,
	})
}

// authorized checks the bearer credential in constant time. An unset
// secret never authorizes anything.
func (h *DispatchHandler) authorized(c echo.Context) bool {
	if h.cronSecret == "" {
		return false
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) == 1
}
