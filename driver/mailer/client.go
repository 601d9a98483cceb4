// Package mailer provides an HTTP client for a Resend-compatible mail API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"relay-notifier/config"
	"relay-notifier/domain"
	"relay-notifier/models"
	"relay-notifier/retry"

	"golang.org/x/time/rate"
)

// Client wraps the mail API with a bounded timeout, an outbound rate limit
// and transport-level retries.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	retrier *retry.Retrier
	logger  *slog.Logger
}

type sendResponse struct {
	ID string `json:"id"`
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NewClient creates a new mail API client.
func NewClient(cfg *config.MailerConfig, logger *slog.Logger) *Client {
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	// Only connectivity failures are retried; API rejections are final.
	retrier := retry.NewRetrier(retry.Config{
		MaxAttempts:   attempts,
		BaseDelay:     500 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.2,
	}, func(err error) bool {
		return errors.Is(err, domain.ErrMailerUnavailable)
	}, logger)

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		retrier: retrier,
		logger:  logger,
	}
}

// Send delivers a single email and returns the provider message ID.
// A non-2xx response is surfaced as a structured error wrapping
// domain.ErrSendFailed; transport failures wrap domain.ErrMailerUnavailable.
func (c *Client) Send(ctx context.Context, msg *models.EmailMessage) (string, error) {
	if msg == nil {
		return "", fmt.Errorf("email message cannot be nil")
	}
	if msg.To == "" {
		return "", fmt.Errorf("email recipient cannot be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to encode email payload: %w", err)
	}

	var messageID string
	err = c.retrier.Do(ctx, func() error {
		var sendErr error
		messageID, sendErr = c.post(ctx, body, msg.To)
		return sendErr
	})
	if err != nil {
		// The retrier wraps with %w, so errors.Is still matches the
		// domain sentinels.
		return "", err
	}

	c.logger.InfoContext(ctx, "email accepted by mail API", "message_id", messageID, "to", msg.To)

	return messageID, nil
}

// post performs one request against the send endpoint.
func (c *Client) post(ctx context.Context, body []byte, recipient string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create send request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "mail API request failed", "error", err, "to", recipient)
		return "", fmt.Errorf("%w: %w", domain.ErrMailerUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read mail API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		reason := string(respBody)
		if err := json.Unmarshal(respBody, &ae); err == nil && ae.Message != "" {
			reason = ae.Message
		}

		c.logger.ErrorContext(ctx, "mail API rejected send", "status", resp.StatusCode, "reason", reason, "to", recipient)

		return "", fmt.Errorf("%w: status %d: %s", domain.ErrSendFailed, resp.StatusCode, reason)
	}

	var sr sendResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return "", fmt.Errorf("failed to decode mail API response: %w", err)
	}

	return sr.ID, nil
}
