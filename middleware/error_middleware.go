// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Converts errors to consistent HTTP responses, hides internal details
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"relay-notifier/logger"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the client-safe portion of an error.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
// echo.HTTPError keeps its status; everything else becomes a generic 500.
// 5xx messages are never exposed to the client.
func CustomHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		requestID := ""
		if rid := ctx.Value(logger.RequestIDKey); rid != nil {
			if s, ok := rid.(string); ok {
				requestID = s
			}
		}

		var response ErrorResponse
		var status int

		switch e := err.(type) {
		case *echo.HTTPError:
			status = e.Code
			msg := "An error occurred"
			if m, ok := e.Message.(string); ok {
				msg = m
			}

			// For 5xx errors, hide the actual message
			safeMsg := msg
			if status >= 500 {
				safeMsg = "An unexpected error occurred. Please try again later."
			}

			response = ErrorResponse{
				Error: ErrorDetail{
					Code:      "HTTP_ERROR",
					Message:   safeMsg,
					Retryable: isRetryableStatus(status),
				},
			}

			log.Warn("HTTP error",
				"request_id", requestID,
				"status", status,
				"message", msg,
			)

		default:
			status = http.StatusInternalServerError
			response = ErrorResponse{
				Error: ErrorDetail{
					Code:      "INTERNAL_ERROR",
					Message:   "An unexpected error occurred. Please try again later.",
					Retryable: false,
				},
			}

			// Log the actual error for debugging (never expose to client)
			log.Error("unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, response); err != nil {
			log.Error("failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
