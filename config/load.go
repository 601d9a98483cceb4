package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	if err := loadServerConfig(&config.Server); err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if err := loadCronConfig(&config.Cron); err != nil {
		return fmt.Errorf("failed to load cron config: %w", err)
	}

	if err := loadMailerConfig(&config.Mailer); err != nil {
		return fmt.Errorf("failed to load mailer config: %w", err)
	}

	if err := loadDispatchConfig(&config.Dispatch); err != nil {
		return fmt.Errorf("failed to load dispatch config: %w", err)
	}

	if err := loadAppConfig(&config.App); err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error

	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}

	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}

	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}

	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}

	return nil
}

func loadCronConfig(cfg *CronConfig) error {
	cfg.Secret = parseStringEnv("CRON_SECRET", cfg.Secret)
	return nil
}

func loadMailerConfig(cfg *MailerConfig) error {
	var err error

	cfg.BaseURL = parseStringEnv("MAILER_BASE_URL", cfg.BaseURL)
	cfg.APIKey = parseStringEnv("RESEND_API_KEY", cfg.APIKey)
	cfg.FromAddress = parseStringEnv("MAILER_FROM_ADDRESS", cfg.FromAddress)

	if cfg.Timeout, err = parseDurationEnv("MAILER_TIMEOUT", cfg.Timeout); err != nil {
		return err
	}

	if cfg.RateLimit, err = parseFloatEnv("MAILER_RATE_LIMIT", cfg.RateLimit); err != nil {
		return err
	}

	if cfg.RateBurst, err = parseIntEnv("MAILER_RATE_BURST", cfg.RateBurst); err != nil {
		return err
	}

	if cfg.RetryAttempts, err = parseIntEnv("MAILER_RETRY_ATTEMPTS", cfg.RetryAttempts); err != nil {
		return err
	}

	return nil
}

func loadDispatchConfig(cfg *DispatchConfig) error {
	var err error

	if cfg.Concurrency, err = parseIntEnv("DISPATCH_CONCURRENCY", cfg.Concurrency); err != nil {
		return err
	}

	if cfg.ItemTimeout, err = parseDurationEnv("DISPATCH_ITEM_TIMEOUT", cfg.ItemTimeout); err != nil {
		return err
	}

	if cfg.SelectTimeout, err = parseDurationEnv("DISPATCH_SELECT_TIMEOUT", cfg.SelectTimeout); err != nil {
		return err
	}

	return nil
}

func loadAppConfig(cfg *AppConfig) error {
	cfg.DashboardURL = parseStringEnv("APP_DASHBOARD_URL", cfg.DashboardURL)
	return nil
}

func parseStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return d, nil
	}
	return defaultValue, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return f, nil
	}
	return defaultValue, nil
}
