package repository

import (
	"context"
	"time"

	"relay-notifier/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/repository_mocks.go -package=mocks

// ReminderRepository handles saved-post reminder persistence.
type ReminderRepository interface {
	FindDue(ctx context.Context, now time.Time) ([]*models.DueReminder, error)
	MarkNotified(ctx context.Context, postID uuid.UUID) error
	GetStats(ctx context.Context, now time.Time) (*models.ReminderStatistics, error)
}

// NotificationRepository handles outbound email delivery.
type NotificationRepository interface {
	Send(ctx context.Context, msg *models.EmailMessage) (string, error)
}
