package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the user-facing lifecycle of a saved post.
// It is driven by user actions only; the dispatch engine never transitions it.
type PostStatus string

const (
	PostStatusQueued    PostStatus = "queued"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusCompleted PostStatus = "completed"
)

// SavedPost represents a bookmarked post row.
type SavedPost struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	PostURL      string     `db:"post_url"`
	PostAuthor   string     `db:"post_author"`
	PostPreview  *string    `db:"post_preview"`
	CommentText  *string    `db:"comment_text"`
	ScheduledFor *time.Time `db:"scheduled_for"`
	Status       PostStatus `db:"status"`
	ReminderSent bool       `db:"reminder_sent"`
	CreatedAt    time.Time  `db:"created_at"`
}

// Recipient is the resolved owner identity a reminder is delivered to.
type Recipient struct {
	Email    string `db:"email"`
	FullName string `db:"full_name"`
}

// DueReminder bundles a due post with its resolved recipient.
type DueReminder struct {
	Post      SavedPost
	Recipient Recipient
}
