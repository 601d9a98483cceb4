package config

import (
	"fmt"
	"strings"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Cron.Secret == "" {
		return fmt.Errorf("cron secret cannot be empty")
	}

	if config.Mailer.APIKey == "" {
		return fmt.Errorf("mailer API key cannot be empty")
	}

	if !strings.HasPrefix(config.Mailer.BaseURL, "http://") && !strings.HasPrefix(config.Mailer.BaseURL, "https://") {
		return fmt.Errorf("invalid mailer base URL: %s", config.Mailer.BaseURL)
	}

	if config.Mailer.FromAddress == "" {
		return fmt.Errorf("mailer from address cannot be empty")
	}

	if config.Mailer.Timeout <= 0 {
		return fmt.Errorf("mailer timeout must be positive: %v", config.Mailer.Timeout)
	}

	if config.Mailer.RateLimit <= 0 {
		return fmt.Errorf("mailer rate limit must be positive: %f", config.Mailer.RateLimit)
	}

	if config.Mailer.RateBurst <= 0 {
		return fmt.Errorf("mailer rate burst must be positive: %d", config.Mailer.RateBurst)
	}

	if config.Mailer.RetryAttempts <= 0 {
		return fmt.Errorf("mailer retry attempts must be positive: %d", config.Mailer.RetryAttempts)
	}

	if config.Dispatch.Concurrency <= 0 {
		return fmt.Errorf("dispatch concurrency must be positive: %d", config.Dispatch.Concurrency)
	}

	if config.Dispatch.ItemTimeout <= 0 {
		return fmt.Errorf("dispatch item timeout must be positive: %v", config.Dispatch.ItemTimeout)
	}

	if config.Dispatch.SelectTimeout <= 0 {
		return fmt.Errorf("dispatch select timeout must be positive: %v", config.Dispatch.SelectTimeout)
	}

	return nil
}
