// ABOUTME: This file implements configuration management with environment variable support
// ABOUTME: Provides validation and defaults for the reminder dispatch service
package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Cron     CronConfig     `json:"cron"`
	Mailer   MailerConfig   `json:"mailer"`
	Dispatch DispatchConfig `json:"dispatch"`
	App      AppConfig      `json:"app"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9400"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
}

type CronConfig struct {
	// Secret is the static bearer credential the external scheduler must present.
	Secret string `json:"-" env:"CRON_SECRET"`
}

type MailerConfig struct {
	BaseURL     string        `json:"base_url" env:"MAILER_BASE_URL" default:"https://api.resend.com"`
	APIKey      string        `json:"-" env:"RESEND_API_KEY"`
	FromAddress string        `json:"from_address" env:"MAILER_FROM_ADDRESS" default:"Relay <noreply@tryrelay.com>"`
	Timeout     time.Duration `json:"timeout" env:"MAILER_TIMEOUT" default:"15s"`
	// Outbound request rate limiting toward the mail API
	RateLimit float64 `json:"rate_limit" env:"MAILER_RATE_LIMIT" default:"10"`
	RateBurst int     `json:"rate_burst" env:"MAILER_RATE_BURST" default:"5"`
	// RetryAttempts bounds transport-level retries per send.
	RetryAttempts int `json:"retry_attempts" env:"MAILER_RETRY_ATTEMPTS" default:"3"`
}

type DispatchConfig struct {
	// Concurrency bounds the worker pool processing due reminders.
	Concurrency int `json:"concurrency" env:"DISPATCH_CONCURRENCY" default:"10"`
	// ItemTimeout bounds the send-plus-mark work for a single reminder.
	ItemTimeout time.Duration `json:"item_timeout" env:"DISPATCH_ITEM_TIMEOUT" default:"30s"`
	// SelectTimeout bounds the due-item selection query.
	SelectTimeout time.Duration `json:"select_timeout" env:"DISPATCH_SELECT_TIMEOUT" default:"10s"`
}

type AppConfig struct {
	// DashboardURL is linked from the reminder email footer.
	DashboardURL string `json:"dashboard_url" env:"APP_DASHBOARD_URL" default:"https://tryrelay.com"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9400,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    60 * time.Second,
		},
		Cron: CronConfig{
			Secret: "",
		},
		Mailer: MailerConfig{
			BaseURL:       "https://api.resend.com",
			APIKey:        "",
			FromAddress:   "Relay <noreply@tryrelay.com>",
			Timeout:       15 * time.Second,
			RateLimit:     10,
			RateBurst:     5,
			RetryAttempts: 3,
		},
		Dispatch: DispatchConfig{
			Concurrency:   10,
			ItemTimeout:   30 * time.Second,
			SelectTimeout: 10 * time.Second,
		},
		App: AppConfig{
			DashboardURL: "https://tryrelay.com",
		},
	}
}
