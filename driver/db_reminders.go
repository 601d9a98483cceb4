package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relay-notifier/domain"
	"relay-notifier/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetDueReminders returns saved posts whose scheduled time has passed and whose
// reminder has not been sent, joined with the owner's profile. The comparison is
// strictly less-than: a post scheduled exactly at `now` is picked up by a later
// invocation. Owners without a profile row are excluded by the inner join.
func GetDueReminders(ctx context.Context, db DB, now time.Time) ([]*models.DueReminder, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT sp.id, sp.user_id, sp.post_url, sp.post_author, sp.post_preview,
		       sp.comment_text, sp.scheduled_for, sp.status, sp.reminder_sent, sp.created_at,
		       p.email, p.full_name
		FROM saved_posts sp
		INNER JOIN profiles p ON p.id = sp.user_id
		WHERE sp.scheduled_for IS NOT NULL
		  AND sp.scheduled_for < $1
		  AND sp.reminder_sent = false
		ORDER BY sp.scheduled_for ASC
	`

	rows, err := db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	defer rows.Close()

	reminders := []*models.DueReminder{}

	for rows.Next() {
		var r models.DueReminder

		err = rows.Scan(
			&r.Post.ID,
			&r.Post.UserID,
			&r.Post.PostURL,
			&r.Post.PostAuthor,
			&r.Post.PostPreview,
			&r.Post.CommentText,
			&r.Post.ScheduledFor,
			&r.Post.Status,
			&r.Post.ReminderSent,
			&r.Post.CreatedAt,
			&r.Recipient.Email,
			&r.Recipient.FullName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}

		reminders = append(reminders, &r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read due reminders: %w", err)
	}

	return reminders, nil
}

// MarkReminderSent flips reminder_sent for the given post, conditioned on the
// flag still being false so that overlapping invocations cannot double-mark.
func MarkReminderSent(ctx context.Context, db DB, postID uuid.UUID) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	tag, err := db.Exec(ctx,
		`UPDATE saved_posts SET reminder_sent = true WHERE id = $1 AND reminder_sent = false`,
		postID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish "row gone" from "already marked by a concurrent invocation".
		var sent bool
		err = db.QueryRow(ctx, `SELECT reminder_sent FROM saved_posts WHERE id = $1`, postID).Scan(&sent)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check reminder state: %w", err)
		}
		if sent {
			return domain.ErrAlreadyNotified
		}
		return fmt.Errorf("mark reminder sent affected no rows for %s", postID)
	}

	return nil
}

// GetReminderStats returns aggregate counts over saved posts relative to `now`.
func GetReminderStats(ctx context.Context, db DB, now time.Time) (*models.ReminderStatistics, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	query := `
		SELECT
			COUNT(*) FILTER (WHERE scheduled_for IS NOT NULL AND reminder_sent = false) AS scheduled,
			COUNT(*) FILTER (WHERE scheduled_for IS NOT NULL AND scheduled_for < $1 AND reminder_sent = false) AS due_now,
			COUNT(*) FILTER (WHERE reminder_sent = true) AS sent
		FROM saved_posts
	`

	var stats models.ReminderStatistics

	err := db.QueryRow(ctx, query, now).Scan(&stats.ScheduledCount, &stats.DueNowCount, &stats.SentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminder stats: %w", err)
	}

	return &stats, nil
}
