package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Jamie-Rodriguez/hex-contracts-demo/internal/api/http"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/config"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/logging"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/readiness"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/scheduler"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather/providers"
)

const appName = "weather-commentator"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start Weather Commentator: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg, appName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("failed to start weather commentator", "error", err)
		stop()
		os.Exit(1)
	}

	slog.Info("shutting down")
}

func run(ctx context.Context, cfg *config.AppConfig) error {
	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	station := providers.NewRemoteStation(httpClient, cfg.StationURL)
	reporter := providers.NewRemoteReporter(httpClient, cfg.ReporterURL)

	slog.Info("waiting for remote services to become available",
		"station", cfg.StationURL,
		"reporter", cfg.ReporterURL,
		"timeout", cfg.ReadinessTimeout,
	)
	for _, base := range []string{cfg.StationURL, cfg.ReporterURL} {
		if err := readiness.WaitForService(ctx, httpClient, base+"/readyz", cfg.ReadinessInterval, cfg.ReadinessTimeout); err != nil {
			return err
		}
	}

	if cfg.StatusAddr != "" {
		app := httpapi.NewApp(appName, false)
		httpapi.RegisterHealth(app)
		httpapi.RegisterMetrics(app)
		httpapi.RegisterNotFound(app)

		go func() {
			slog.Info("status server listening", "addr", cfg.StatusAddr)
			if err := app.Listen(cfg.StatusAddr); err != nil {
				slog.Error("status server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				slog.Error("error during status server shutdown", "error", err)
			}
		}()
	}

	sched := scheduler.New(station, reporter, cfg.PollInterval)
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	<-ctx.Done()
	return nil
}
