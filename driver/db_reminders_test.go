package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"relay-notifier/domain"
	"relay-notifier/models"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDueReminders_NilDB(t *testing.T) {
	t.Run("should return error when db is nil", func(t *testing.T) {
		reminders, err := GetDueReminders(context.Background(), nil, time.Now())

		assert.Error(t, err)
		assert.Nil(t, reminders)
	})
}

func TestGetDueReminders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	scheduled := now.Add(-24 * time.Hour)
	created := now.Add(-48 * time.Hour)

	postID := uuid.New()
	userID := uuid.New()
	preview := "Great insights on Go error handling..."

	columns := []string{
		"id", "user_id", "post_url", "post_author", "post_preview",
		"comment_text", "scheduled_for", "status", "reminder_sent", "created_at",
		"email", "full_name",
	}

	rows := pgxmock.NewRows(columns).
		AddRow(
			postID, userID, "https://www.linkedin.com/posts/jane-doe_go", "Jane Doe", &preview,
			(*string)(nil), &scheduled, models.PostStatusScheduled, false, created,
			"owner@example.com", "Sam Owner",
		)

	mock.ExpectQuery("SELECT sp.id, sp.user_id, sp.post_url").
		WithArgs(now).
		WillReturnRows(rows)

	reminders, err := GetDueReminders(context.Background(), mock, now)

	require.NoError(t, err)
	require.Len(t, reminders, 1)

	r := reminders[0]
	assert.Equal(t, postID, r.Post.ID)
	assert.Equal(t, "Jane Doe", r.Post.PostAuthor)
	require.NotNil(t, r.Post.PostPreview)
	assert.Equal(t, preview, *r.Post.PostPreview)
	assert.Nil(t, r.Post.CommentText)
	assert.False(t, r.Post.ReminderSent)
	assert.Equal(t, "owner@example.com", r.Recipient.Email)
	assert.Equal(t, "Sam Owner", r.Recipient.FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDueReminders_PredicateShape(t *testing.T) {
	t.Run("should compare scheduled_for strictly before now", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now().UTC()

		// A post scheduled exactly at `now` waits for the next invocation:
		// the predicate is `scheduled_for < $1`, never `<=`. The literal
		// `< \$1` in this expectation fails to match a `<=` comparison.
		mock.ExpectQuery(`WHERE sp\.scheduled_for IS NOT NULL\s+AND sp\.scheduled_for < \$1\s+AND sp\.reminder_sent = false`).
			WithArgs(now).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "user_id", "post_url", "post_author", "post_preview",
				"comment_text", "scheduled_for", "status", "reminder_sent", "created_at",
				"email", "full_name",
			}))

		reminders, err := GetDueReminders(context.Background(), mock, now)

		require.NoError(t, err)
		assert.Empty(t, reminders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetDueReminders_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT sp.id, sp.user_id, sp.post_url").
		WithArgs(now).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "post_url", "post_author", "post_preview",
			"comment_text", "scheduled_for", "status", "reminder_sent", "created_at",
			"email", "full_name",
		}))

	reminders, err := GetDueReminders(context.Background(), mock, now)

	require.NoError(t, err)
	assert.Empty(t, reminders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDueReminders_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT sp.id, sp.user_id, sp.post_url").
		WithArgs(now).
		WillReturnError(errors.New("connection refused"))

	reminders, err := GetDueReminders(context.Background(), mock, now)

	require.Error(t, err)
	assert.Nil(t, reminders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReminderSent(t *testing.T) {
	t.Run("should mark when flag is still false", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		postID := uuid.New()

		mock.ExpectExec("UPDATE saved_posts SET reminder_sent = true").
			WithArgs(postID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = MarkReminderSent(context.Background(), mock, postID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return ErrAlreadyNotified when a concurrent invocation won", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		postID := uuid.New()

		mock.ExpectExec("UPDATE saved_posts SET reminder_sent = true").
			WithArgs(postID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT reminder_sent FROM saved_posts").
			WithArgs(postID).
			WillReturnRows(pgxmock.NewRows([]string{"reminder_sent"}).AddRow(true))

		err = MarkReminderSent(context.Background(), mock, postID)

		assert.ErrorIs(t, err, domain.ErrAlreadyNotified)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return ErrPostNotFound when the row is gone", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		postID := uuid.New()

		mock.ExpectExec("UPDATE saved_posts SET reminder_sent = true").
			WithArgs(postID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT reminder_sent FROM saved_posts").
			WithArgs(postID).
			WillReturnRows(pgxmock.NewRows([]string{"reminder_sent"}))

		err = MarkReminderSent(context.Background(), mock, postID)

		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should propagate exec errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		postID := uuid.New()

		mock.ExpectExec("UPDATE saved_posts SET reminder_sent = true").
			WithArgs(postID).
			WillReturnError(errors.New("write failed"))

		err = MarkReminderSent(context.Background(), mock, postID)

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return error when db is nil", func(t *testing.T) {
		err := MarkReminderSent(context.Background(), nil, uuid.New())
		assert.Error(t, err)
	})
}

func TestGetReminderStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()

	mock.ExpectQuery("SELECT").
		WithArgs(now).
		WillReturnRows(pgxmock.NewRows([]string{"scheduled", "due_now", "sent"}).AddRow(7, 2, 40))

	stats, err := GetReminderStats(context.Background(), mock, now)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.ScheduledCount)
	assert.Equal(t, 2, stats.DueNowCount)
	assert.Equal(t, 40, stats.SentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
