package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/Jamie-Rodriguez/hex-contracts-demo/internal/api/http"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/config"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/logging"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather/providers"
)

const appName = "weather-reporter"

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg, appName))

	if cfg.ReporterAlwaysFail {
		slog.Warn("REPORTER_ALWAYS_FAIL is set; every report request will be rejected")
	}
	reporter := providers.NewMemoryReporter(cfg.ReporterAlwaysFail)

	app := httpapi.NewApp(appName, cfg.AppEnv == "dev")
	httpapi.RegisterHealth(app)
	httpapi.RegisterReporterRoutes(app, reporter)
	httpapi.RegisterNotFound(app)

	go func() {
		slog.Info("http listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
}
