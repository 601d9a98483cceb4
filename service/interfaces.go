package service

import (
	"context"
	"time"

	"relay-notifier/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/service_mocks.go -package=mocks

// ReminderDispatchService handles due-reminder selection and dispatch.
type ReminderDispatchService interface {
	DispatchDueReminders(ctx context.Context, now time.Time) (*DispatchResult, error)
	GetStats(ctx context.Context, now time.Time) (*models.ReminderStatistics, error)
}

// DispatchStage identifies how far a single reminder got through the
// render, send, mark pipeline.
type DispatchStage string

const (
	StageSent                DispatchStage = "sent"
	StageRecipientUnresolved DispatchStage = "recipient_unresolved"
	StageRenderFailed        DispatchStage = "render_failed"
	StageSendFailed          DispatchStage = "send_failed"
	StageMarkFailed          DispatchStage = "mark_failed"
	StageAborted             DispatchStage = "aborted"
)

// ItemOutcome records the result for one reminder. Failures are tagged
// values, never surfaced as batch-level errors.
type ItemOutcome struct {
	Err       error
	PostID    uuid.UUID
	Recipient string
	MessageID string
	Stage     DispatchStage
}

// DispatchResult represents the result of one dispatch batch.
type DispatchResult struct {
	Outcomes       []ItemOutcome
	ProcessedCount int
	SuccessCount   int
	ErrorCount     int
}
