// ABOUTME: This file provides HTTP request/response logging middleware
// ABOUTME: Creates structured access logs with timing and context information
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"relay-notifier/logger"
)

func LoggingMiddleware(contextLogger *logger.ContextLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			start := time.Now()
			ctx := req.Context()

			log := contextLogger.WithContext(ctx).With(
				"method", req.Method,
				"path", req.URL.Path,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
			)

			log.Info("request started")

			err := next(c)

			duration := time.Since(start)

			completionLog := contextLogger.WithContext(ctx).With(
				"log_type", "access",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"duration_ms", duration.Milliseconds(),
			)

			completionLog.Info("request completed")

			return err
		}
	}
}
