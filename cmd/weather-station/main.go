package main

import (
	"context"
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
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather/providers"
)

const appName = "weather-station"

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(cfg, appName))

	station := newStation(cfg)
	slog.Info("station source selected", "source", cfg.StationSource)

	app := httpapi.NewApp(appName, cfg.AppEnv == "dev")
	httpapi.RegisterHealth(app)
	httpapi.RegisterStationRoutes(app, station)
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

// newStation builds the data source chosen by STATION_SOURCE.
func newStation(cfg *config.AppConfig) weather.Station {
	if cfg.StationSource == config.StationSourceOpenMeteo {
		client := &http.Client{Timeout: cfg.HTTPTimeout}
		return providers.NewOpenMeteoStation(client, cfg.OpenMeteoURL,
			cfg.StationLatitude, cfg.StationLongitude, weather.Units(cfg.StationUnits))
	}
	return providers.NewRandomStation(providers.WithWholeDegrees())
}
