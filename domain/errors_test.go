// ABOUTME: Tests for domain-level sentinel errors
// ABOUTME: Ensures error values work correctly with errors.Is
package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Defined(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrPostNotFound", ErrPostNotFound},
		{"ErrAlreadyNotified", ErrAlreadyNotified},
		{"ErrMarkFailed", ErrMarkFailed},
		{"ErrSendFailed", ErrSendFailed},
		{"ErrRecipientUnresolved", ErrRecipientUnresolved},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrMailerUnavailable", ErrMailerUnavailable},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Errorf("%s should not be nil", s.name)
			}
			if s.err.Error() == "" {
				t.Errorf("%s should have non-empty message", s.name)
			}
		})
	}
}

func TestSentinelErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "direct match ErrAlreadyNotified",
			err:    ErrAlreadyNotified,
			target: ErrAlreadyNotified,
			want:   true,
		},
		{
			name:   "wrapped ErrMarkFailed",
			err:    fmt.Errorf("dispatch failed: %w", ErrMarkFailed),
			target: ErrMarkFailed,
			want:   true,
		},
		{
			name:   "different errors should not match",
			err:    ErrSendFailed,
			target: ErrMarkFailed,
			want:   false,
		},
		{
			name:   "deeply wrapped error",
			err:    fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrUnauthorized)),
			target: ErrUnauthorized,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_UniqueMessages(t *testing.T) {
	sentinels := []error{
		ErrPostNotFound,
		ErrAlreadyNotified,
		ErrMarkFailed,
		ErrSendFailed,
		ErrRecipientUnresolved,
		ErrUnauthorized,
		ErrMailerUnavailable,
	}

	messages := make(map[string]bool)
	for _, err := range sentinels {
		msg := err.Error()
		if messages[msg] {
			t.Errorf("duplicate error message found: %q", msg)
		}
		messages[msg] = true
	}
}
