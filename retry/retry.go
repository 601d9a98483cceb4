// ABOUTME: This file implements exponential backoff retry mechanism with jitter
// ABOUTME: Provides resilient error handling for mail API calls
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

type Config struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// ErrorClassifier reports whether an error is worth another attempt.
type ErrorClassifier func(error) bool

type Retrier struct {
	config      Config
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

func NewRetrier(config Config, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

func (r *Retrier) Do(ctx context.Context, operation func() error) error {
	var lastErr error
	var totalWaitTime time.Duration

	attempts := 0
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		attempts = attempt
		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				r.logger.Info("operation succeeded after retry",
					"attempt", attempt,
					"total_wait_time_ms", totalWaitTime.Milliseconds())
			}
			return nil
		}

		retryable := r.isRetryable != nil && r.isRetryable(lastErr)
		r.logger.Warn("operation attempt failed",
			"attempt", attempt,
			"error", lastErr,
			"retryable", retryable)

		if attempt == r.config.MaxAttempts || !retryable {
			break
		}

		delay := r.calculateDelay(attempt)
		totalWaitTime += delay

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	// A non-retryable error can end the loop early, so report the attempts
	// that actually ran, not the configured maximum.
	return fmt.Errorf("operation failed after %d attempts: %w", attempts, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// Jitter spreads concurrent senders apart
	jitter := 1.0 + (rand.Float64()-0.5)*r.config.JitterFactor
	delay *= jitter

	return time.Duration(delay)
}
