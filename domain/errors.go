// ABOUTME: Domain-level sentinel errors for the relay-notifier service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Reminder-related errors
var (
	// ErrPostNotFound indicates the requested saved post does not exist
	ErrPostNotFound = errors.New("saved post not found")

	// ErrAlreadyNotified indicates the post's reminder flag was already set.
	// Returned by the conditional mark update when zero rows are affected.
	ErrAlreadyNotified = errors.New("reminder already marked as sent")

	// ErrMarkFailed indicates the notification was delivered but persisting
	// the reminder_sent flag failed. Operators must treat this as a
	// duplicate-delivery risk on the next trigger.
	ErrMarkFailed = errors.New("reminder sent but mark-as-sent failed")

	// ErrSendFailed indicates the mail API rejected or failed the delivery.
	// The reminder stays eligible and is retried on the next trigger.
	ErrSendFailed = errors.New("reminder delivery failed")

	// ErrRecipientUnresolved indicates the owning profile carries no usable
	// email address, so the reminder cannot be delivered.
	ErrRecipientUnresolved = errors.New("reminder recipient unresolved")
)

// Trigger errors
var (
	// ErrUnauthorized indicates the trigger credential did not match
	ErrUnauthorized = errors.New("invalid cron credential")
)

// External service errors
var (
	// ErrMailerUnavailable indicates the mail API is not reachable
	ErrMailerUnavailable = errors.New("mail API unavailable")
)
