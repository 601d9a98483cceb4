package logger

import (
	"context"
	"log/slog"
)

// ContextKey is the type for context keys used in logging
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"

	// Business context keys with 'relay.' prefix, following OTel semantic conventions
	PostIDKey        ContextKey = "relay.post.id"
	UserIDKey        ContextKey = "relay.user.id"
	DispatchStageKey ContextKey = "relay.dispatch.stage"
)

// GlobalContext is the global ContextLogger instance
var GlobalContext *ContextLogger

// ContextLogger wraps a slog.Logger to add context-aware logging
type ContextLogger struct {
	logger *slog.Logger
}

// NewContextLogger creates a new ContextLogger wrapping the provided logger
func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries and returns a new logger
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		args = append(args, string(RequestIDKey), requestID.(string))
	}

	if postID := ctx.Value(PostIDKey); postID != nil {
		args = append(args, string(PostIDKey), postID.(string))
	}

	if userID := ctx.Value(UserIDKey); userID != nil {
		args = append(args, string(UserIDKey), userID.(string))
	}

	if stage := ctx.Value(DispatchStageKey); stage != nil {
		args = append(args, string(DispatchStageKey), stage.(string))
	}

	return cl.logger.With(args...)
}

// WithRequestID adds the request ID to context for observability
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithPostID adds the saved post ID to context for observability
func WithPostID(ctx context.Context, postID string) context.Context {
	return context.WithValue(ctx, PostIDKey, postID)
}

// WithUserID adds the owner's user ID to context for observability
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithDispatchStage adds the dispatch stage (select/render/send/mark) to context
func WithDispatchStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, DispatchStageKey, stage)
}
