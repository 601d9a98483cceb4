package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relay-notifier/logger"
	"relay-notifier/utils/otel"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the HTTP server, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
	}
	// InitProvider returns a nil shutdown on failure; guard the deferred call.
	otelShutdown = ensureShutdown(otelShutdown)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	// Initialize logger
	log := logger.InitWithOTel(otelCfg.Enabled)

	log.Info("Starting relay-notifier service",
		"otel_enabled", otelCfg.Enabled,
		"service", otelCfg.ServiceName)

	// Build all dependencies
	deps, cleanup, err := BuildDependencies(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	// Start HTTP server
	httpServer := NewHTTPServer(deps, otelCfg.Enabled, otelCfg.ServiceName)
	StartHTTPServer(httpServer, deps, log)

	// Wait for shutdown signal
	log.Info("relay-notifier service started successfully")
	waitForShutdown(httpServer, deps, log)

	return nil
}

// ensureShutdown substitutes a no-op for a nil telemetry shutdown function
// so shutdown stays safe when provider initialization failed.
func ensureShutdown(shutdown otel.ShutdownFunc) otel.ShutdownFunc {
	if shutdown == nil {
		return func(context.Context) error { return nil }
	}
	return shutdown
}

func waitForShutdown(httpServer interface{ Shutdown(context.Context) error }, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down relay-notifier service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	log.Info("relay-notifier service stopped")
}
