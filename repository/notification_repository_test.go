package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relay-notifier/config"
	"relay-notifier/driver/mailer"
	"relay-notifier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Send(t *testing.T) {
	t.Run("should return error when client is nil", func(t *testing.T) {
		repo := NewNotificationRepository(nil, testLoggerRepo())

		id, err := repo.Send(context.Background(), &models.EmailMessage{To: "owner@example.com"})

		assert.Error(t, err)
		assert.Empty(t, id)
	})

	t.Run("should delegate to the mail client", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "msg-456"})
		}))
		defer srv.Close()

		client := mailer.NewClient(&config.MailerConfig{
			BaseURL:     srv.URL,
			APIKey:      "re_test_key",
			FromAddress: "Relay <noreply@tryrelay.com>",
			Timeout:     2 * time.Second,
			RateLimit:   100,
			RateBurst:   10,
		}, testLoggerRepo())

		repo := NewNotificationRepository(client, testLoggerRepo())

		id, err := repo.Send(context.Background(), &models.EmailMessage{
			From:    "Relay <noreply@tryrelay.com>",
			To:      "owner@example.com",
			Subject: "Time to engage with Jane Doe's post!",
			HTML:    "<html></html>",
		})

		require.NoError(t, err)
		assert.Equal(t, "msg-456", id)
	})
}
