package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"relay-notifier/driver"
	"relay-notifier/models"

	"github.com/google/uuid"
)

// reminderRepository implementation.
type reminderRepository struct {
	db     driver.DB
	logger *slog.Logger
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db driver.DB, logger *slog.Logger) ReminderRepository {
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// FindDue returns reminders whose scheduled time has passed, joined with the
// owning profile. The set is read-only; marking happens per item after a
// successful send.
func (r *reminderRepository) FindDue(ctx context.Context, now time.Time) ([]*models.DueReminder, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	r.logger.DebugContext(ctx, "querying due reminders", "now", now)

	reminders, err := driver.GetDueReminders(ctx, r.db, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to find due reminders", "error", err)
		return nil, fmt.Errorf("failed to find due reminders: %w", err)
	}

	r.logger.InfoContext(ctx, "found due reminders", "count", len(reminders))

	return reminders, nil
}

// MarkNotified flips the reminder flag for a post that has been emailed.
func (r *reminderRepository) MarkNotified(ctx context.Context, postID uuid.UUID) error {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return fmt.Errorf("database connection is nil")
	}

	if err := driver.MarkReminderSent(ctx, r.db, postID); err != nil {
		r.logger.ErrorContext(ctx, "failed to mark reminder sent", "error", err, "post_id", postID)
		return err
	}

	r.logger.InfoContext(ctx, "reminder marked as sent", "post_id", postID)

	return nil
}

// GetStats returns aggregate reminder counts for the stats endpoint.
func (r *reminderRepository) GetStats(ctx context.Context, now time.Time) (*models.ReminderStatistics, error) {
	if r.db == nil {
		r.logger.ErrorContext(ctx, "database connection is nil")
		return nil, fmt.Errorf("database connection is nil")
	}

	stats, err := driver.GetReminderStats(ctx, r.db, now)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to get reminder stats", "error", err)
		return nil, fmt.Errorf("failed to get reminder stats: %w", err)
	}

	return stats, nil
}
