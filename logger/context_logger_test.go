package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestContextLogger_WithContext_BusinessKeys(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	cl := NewContextLogger(slog.New(handler))

	ctx := context.Background()
	ctx = WithPostID(ctx, "post-123")
	ctx = WithUserID(ctx, "user-456")
	ctx = WithDispatchStage(ctx, "send")

	cl.WithContext(ctx).Info("test message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"relay.post.id", "post-123"},
		{"relay.user.id", "user-456"},
		{"relay.dispatch.stage", "send"},
	}

	for _, tt := range tests {
		if got, ok := logEntry[tt.key]; !ok || got != tt.expected {
			t.Errorf("log entry %q = %v, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestContextLogger_WithContext_EmptyContext(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	cl := NewContextLogger(slog.New(handler))

	cl.WithContext(context.Background()).Info("bare message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	for _, key := range []string{"relay.post.id", "relay.user.id", "relay.dispatch.stage"} {
		if _, ok := logEntry[key]; ok {
			t.Errorf("unexpected key %q on empty context", key)
		}
	}
}
