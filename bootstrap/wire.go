package bootstrap

import (
	"context"
	"log/slog"

	"relay-notifier/config"
	"relay-notifier/driver"
	"relay-notifier/driver/mailer"
	"relay-notifier/handler"
	"relay-notifier/repository"
	"relay-notifier/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config          *config.Config
	DBPool          *pgxpool.Pool
	DispatchHandler *handler.DispatchHandler
	HealthHandler   *handler.HealthHandler
	Logger          *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, log *slog.Logger) (*Dependencies, func(), error) {
	// Load application config
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// Initialize database
	dbPool, err := driver.Init(ctx)
	if err != nil {
		return nil, nil, err
	}

	// Initialize repositories
	mailClient := mailer.NewClient(&cfg.Mailer, log)
	reminderRepo := repository.NewReminderRepository(dbPool, log)
	notificationRepo := repository.NewNotificationRepository(mailClient, log)

	// Initialize services
	renderer := service.NewEmailRenderer(cfg.Mailer.FromAddress, cfg.App.DashboardURL)
	dispatchService := service.NewReminderDispatchService(reminderRepo, notificationRepo, renderer, &cfg.Dispatch, log)

	// Initialize handlers
	dispatchHandler := handler.NewDispatchHandler(dispatchService, cfg.Cron.Secret, log)
	healthHandler := handler.NewHealthHandler(dbPool, log)

	cleanup := func() {
		dbPool.Close()
	}

	return &Dependencies{
		Config:          cfg,
		DBPool:          dbPool,
		DispatchHandler: dispatchHandler,
		HealthHandler:   healthHandler,
		Logger:          log,
	}, cleanup, nil
}
