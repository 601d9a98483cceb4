package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"relay-notifier/config"
	"relay-notifier/domain"
	"relay-notifier/logger"
	"relay-notifier/models"
	"relay-notifier/orchestrator"
	"relay-notifier/repository"
)

// ReminderDispatchService implementation.
type reminderDispatchService struct {
	reminderRepo repository.ReminderRepository
	notifier     repository.NotificationRepository
	renderer     *EmailRenderer
	cfg          *config.DispatchConfig
	logger       *slog.Logger
}

// NewReminderDispatchService creates a new reminder dispatch service.
func NewReminderDispatchService(
	reminderRepo repository.ReminderRepository,
	notifier repository.NotificationRepository,
	renderer *EmailRenderer,
	cfg *config.DispatchConfig,
	log *slog.Logger,
) ReminderDispatchService {
	return &reminderDispatchService{
		reminderRepo: reminderRepo,
		notifier:     notifier,
		renderer:     renderer,
		cfg:          cfg,
		logger:       log,
	}
}

// DispatchDueReminders selects every reminder due at `now` and processes each
// one independently. A batch-level error is returned only when the selection
// itself fails; per-item failures are tagged outcomes in the result.
func (s *reminderDispatchService) DispatchDueReminders(ctx context.Context, now time.Time) (*DispatchResult, error) {
	s.logger.InfoContext(ctx, "starting reminder dispatch", "now", now)

	selectCtx, cancel := context.WithTimeout(ctx, s.cfg.SelectTimeout)
	defer cancel()

	reminders, err := s.reminderRepo.FindDue(selectCtx, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to select due reminders, aborting batch", "error", err)
		return nil, fmt.Errorf("failed to select due reminders: %w", err)
	}

	if len(reminders) == 0 {
		s.logger.InfoContext(ctx, "no reminders due")
		return &DispatchResult{Outcomes: []ItemOutcome{}}, nil
	}

	stage := orchestrator.Stage[*models.DueReminder, ItemOutcome]{
		Name:        "dispatch",
		Concurrency: s.cfg.Concurrency,
		Process:     s.dispatchOne,
	}

	results := orchestrator.RunStage(ctx, stage, reminders)

	result := &DispatchResult{
		Outcomes:       make([]ItemOutcome, 0, len(results)),
		ProcessedCount: len(results),
	}

	for _, res := range results {
		outcome := res.Value
		if res.Err != nil {
			// Worker-level failure (panic or cancellation) before an
			// outcome was produced.
			outcome = ItemOutcome{
				PostID:    reminders[res.Index].Post.ID,
				Recipient: reminders[res.Index].Recipient.Email,
				Stage:     StageAborted,
				Err:       res.Err,
			}
		}

		if outcome.Err != nil {
			result.ErrorCount++
		} else {
			result.SuccessCount++
		}

		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.InfoContext(ctx, "reminder dispatch completed",
		"processed", result.ProcessedCount,
		"succeeded", result.SuccessCount,
		"failed", result.ErrorCount)

	return result, nil
}

// dispatchOne runs the render, send, mark pipeline for a single reminder.
// It always returns a tagged outcome; the error return stays nil so one
// reminder's failure never disturbs its batch siblings.
func (s *reminderDispatchService) dispatchOne(ctx context.Context, reminder *models.DueReminder) (ItemOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ItemTimeout)
	defer cancel()

	ctx = logger.WithPostID(ctx, reminder.Post.ID.String())
	ctx = logger.WithUserID(ctx, reminder.Post.UserID.String())

	outcome := ItemOutcome{
		PostID:    reminder.Post.ID,
		Recipient: reminder.Recipient.Email,
	}

	if reminder.Recipient.Email == "" {
		outcome.Stage = StageRecipientUnresolved
		outcome.Err = domain.ErrRecipientUnresolved
		s.logger.WarnContext(ctx, "skipping reminder without recipient email", "post_id", reminder.Post.ID)
		return outcome, nil
	}

	ctx = logger.WithDispatchStage(ctx, "render")
	msg, err := s.renderer.Render(reminder)
	if err != nil {
		outcome.Stage = StageRenderFailed
		outcome.Err = err
		s.logger.ErrorContext(ctx, "failed to render reminder email", "error", err, "post_id", reminder.Post.ID)
		return outcome, nil
	}

	ctx = logger.WithDispatchStage(ctx, "send")
	messageID, err := s.notifier.Send(ctx, msg)
	if err != nil {
		// The flag stays false, so the reminder is retried next trigger.
		outcome.Stage = StageSendFailed
		outcome.Err = err
		s.logger.ErrorContext(ctx, "failed to send reminder email", "error", err, "post_id", reminder.Post.ID)
		return outcome, nil
	}

	outcome.MessageID = messageID

	ctx = logger.WithDispatchStage(ctx, "mark")
	err = s.reminderRepo.MarkNotified(ctx, reminder.Post.ID)
	if err != nil && !errors.Is(err, domain.ErrAlreadyNotified) {
		// The email went out but the flag did not stick; the next trigger
		// may deliver a duplicate.
		outcome.Stage = StageMarkFailed
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrMarkFailed, err)
		s.logger.ErrorContext(ctx, "sent reminder but failed to mark it", "error", err, "post_id", reminder.Post.ID)
		return outcome, nil
	}

	outcome.Stage = StageSent
	s.logger.InfoContext(ctx, "reminder dispatched", "post_id", reminder.Post.ID, "message_id", messageID)

	return outcome, nil
}

// GetStats returns aggregate reminder counts relative to `now`.
func (s *reminderDispatchService) GetStats(ctx context.Context, now time.Time) (*models.ReminderStatistics, error) {
	stats, err := s.reminderRepo.GetStats(ctx, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get reminder stats", "error", err)
		return nil, err
	}

	return stats, nil
}
