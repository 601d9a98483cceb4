package repository

import (
	"context"
	"fmt"
	"log/slog"

	"relay-notifier/driver/mailer"
	"relay-notifier/models"
)

// notificationRepository implementation backed by the mail API client.
type notificationRepository struct {
	client *mailer.Client
	logger *slog.Logger
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(client *mailer.Client, logger *slog.Logger) NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

// Send delivers one email and returns the provider message ID.
func (r *notificationRepository) Send(ctx context.Context, msg *models.EmailMessage) (string, error) {
	if r.client == nil {
		r.logger.ErrorContext(ctx, "mailer client is nil")
		return "", fmt.Errorf("mailer client is nil")
	}

	id, err := r.client.Send(ctx, msg)
	if err != nil {
		return "", err
	}

	return id, nil
}
