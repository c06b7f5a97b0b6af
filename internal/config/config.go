package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingRemoteURL is returned when either dependency base URL is unset.
var ErrMissingRemoteURL = errors.New("environment variables REMOTE_WEATHER_STATION_URL and REMOTE_WEATHER_REPORTER_URL must be set")

type AppConfig struct {
	AppEnv   string
	LogLevel slog.Level

	// Base URLs of the two remote dependencies (no trailing slash).
	StationURL  string
	ReporterURL string

	// PollInterval is the pause between two sync cycles.
	PollInterval time.Duration

	// Startup readiness gate.
	ReadinessTimeout  time.Duration
	ReadinessInterval time.Duration

	// HTTPTimeout bounds every outbound call (0 = no timeout).
	HTTPTimeout time.Duration

	// StatusAddr enables the /healthz + /metrics listener when non-empty.
	StatusAddr string

	// Simulator settings.
	Port               string
	ReporterAlwaysFail bool

	// Station simulator data source. Coordinates and units only apply to
	// StationSourceOpenMeteo.
	StationSource    string
	StationLatitude  float64
	StationLongitude float64
	StationUnits     string
	OpenMeteoURL     string
}

// Station simulator sources.
const (
	StationSourceRandom    = "random"
	StationSourceOpenMeteo = "openmeteo"
)

// Load reads the commentator configuration. Both remote URLs are required.
func Load() (*AppConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	cfg.StationURL = strings.TrimRight(strings.TrimSpace(os.Getenv("REMOTE_WEATHER_STATION_URL")), "/")
	cfg.ReporterURL = strings.TrimRight(strings.TrimSpace(os.Getenv("REMOTE_WEATHER_REPORTER_URL")), "/")
	if cfg.StationURL == "" || cfg.ReporterURL == "" {
		return nil, ErrMissingRemoteURL
	}

	return cfg, nil
}

// LoadServer reads the configuration shared by the simulator services.
func LoadServer() (*AppConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if err := loadStationSource(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadStationSource(cfg *AppConfig) error {
	cfg.StationSource = getenvDefault("STATION_SOURCE", StationSourceRandom)
	cfg.StationUnits = getenvDefault("STATION_UNITS", "celsius")
	cfg.OpenMeteoURL = strings.TrimSpace(os.Getenv("OPENMETEO_URL"))

	switch cfg.StationSource {
	case StationSourceRandom:
		return nil
	case StationSourceOpenMeteo:
	default:
		return fmt.Errorf("invalid STATION_SOURCE %q (allowed: random, openmeteo)", cfg.StationSource)
	}

	switch cfg.StationUnits {
	case "celsius", "fahrenheit":
	default:
		return fmt.Errorf("invalid STATION_UNITS %q (allowed: celsius, fahrenheit)", cfg.StationUnits)
	}

	var err error
	if cfg.StationLatitude, err = getenvCoordinate("STATION_LATITUDE", 90); err != nil {
		return err
	}
	if cfg.StationLongitude, err = getenvCoordinate("STATION_LONGITUDE", 180); err != nil {
		return err
	}
	return nil
}

func getenvCoordinate(key string, limit float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required for STATION_SOURCE=openmeteo", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < -limit || f > limit {
		return 0, fmt.Errorf("invalid %s: %v is outside [-%v, %v]", key, f, limit, limit)
	}
	return f, nil
}

func load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", cfg.AppEnv)
	}

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"POLL_INTERVAL", "5s", &cfg.PollInterval},
		{"READINESS_TIMEOUT", "60s", &cfg.ReadinessTimeout},
		{"READINESS_INTERVAL", "500ms", &cfg.ReadinessInterval},
		{"HTTP_TIMEOUT", "10s", &cfg.HTTPTimeout},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getenvDefault(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", d.key)
		}
		*d.dst = v
	}
	if cfg.PollInterval == 0 {
		return nil, fmt.Errorf("invalid POLL_INTERVAL: must be greater than zero")
	}

	cfg.StatusAddr = strings.TrimSpace(os.Getenv("STATUS_ADDR"))
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ReporterAlwaysFail = getenvBool("REPORTER_ALWAYS_FAIL", false)

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
