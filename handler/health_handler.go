package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pinger is the connectivity probe the health endpoint uses.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes the liveness endpoint.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. db may be nil when the
// endpoint should only report process liveness.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HandleHealth handles GET /api/v1/health requests.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	ctx := c.Request().Context()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "database ping failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
		}
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
