package providers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/Jamie-Rodriguez/hex-contracts-demo/internal/api/http"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/testutil"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather/providers"
)

// runStationContract checks the behaviour every Station variant must share.
func runStationContract(t *testing.T, station weather.Station) {
	t.Run("returns temperature data", func(t *testing.T) {
		reading, ok := station.GetWeatherData(context.Background()).Get()
		require.True(t, ok)
		assert.True(t, reading.Units.Valid(), "units %q", reading.Units)
	})
}

// runReporterContract checks the behaviour every Reporter variant must share.
func runReporterContract(t *testing.T, reporter weather.Reporter) {
	ctx := context.Background()

	t.Run("returns report when successful", func(t *testing.T) {
		comment := "Lovely weather we're having!"
		report, ok := reporter.GetWeatherReport(ctx, weather.ReportRequest{
			Temperature: 25,
			Units:       weather.Celsius,
			Comment:     comment,
		}).Get()
		require.True(t, ok)
		assert.Contains(t, report, "25")
		assert.Contains(t, report, comment)
	})

	t.Run("rejects unrealistic temperatures", func(t *testing.T) {
		got := reporter.GetWeatherReport(ctx, weather.ReportRequest{
			Temperature: 100,
			Units:       weather.Celsius,
			Comment:     "We are melting!",
		})
		assert.True(t, got.IsNone())
	})

	t.Run("rejects invalid units", func(t *testing.T) {
		got := reporter.GetWeatherReport(ctx, weather.ReportRequest{
			Temperature: 25,
			Units:       weather.Units("volts"),
			Comment:     "What units are these??",
		})
		assert.True(t, got.IsNone())
	})
}

func stationServer(t *testing.T, station weather.Station) string {
	app := httpapi.NewApp("weather-station", false)
	httpapi.RegisterHealth(app)
	httpapi.RegisterStationRoutes(app, station)
	httpapi.RegisterNotFound(app)
	return testutil.StartApp(t, app)
}

func reporterServer(t *testing.T, reporter weather.Reporter) string {
	app := httpapi.NewApp("weather-reporter", false)
	httpapi.RegisterHealth(app)
	httpapi.RegisterReporterRoutes(app, reporter)
	httpapi.RegisterNotFound(app)
	return testutil.StartApp(t, app)
}

func testClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}

func TestStationContract(t *testing.T) {
	t.Run("in-memory", func(t *testing.T) {
		runStationContract(t, providers.NewRandomStation())
	})

	t.Run("deterministic", func(t *testing.T) {
		runStationContract(t, providers.NewDeterministicStation(
			option.Some(weather.Reading{Temperature: 20, Units: weather.Celsius}),
		))
	})

	t.Run("remote", func(t *testing.T) {
		base := stationServer(t, providers.NewRandomStation(providers.WithWholeDegrees()))
		runStationContract(t, providers.NewRemoteStation(testClient(), base))
	})
}

func TestReporterContract(t *testing.T) {
	t.Run("in-memory", func(t *testing.T) {
		runReporterContract(t, providers.NewMemoryReporter(false))
	})

	t.Run("remote", func(t *testing.T) {
		base := reporterServer(t, providers.NewMemoryReporter(false))
		runReporterContract(t, providers.NewRemoteReporter(testClient(), base))
	})
}

func TestRemoteStation_NonSuccessIsNone(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Get("/weather", func(c *fiber.Ctx) error {
			return c.Status(status).JSON(fiber.Map{"temperature": 20, "units": "celsius"})
		})
		base := testutil.StartApp(t, app)

		got := providers.NewRemoteStation(testClient(), base).GetWeatherData(context.Background())
		assert.True(t, got.IsNone(), "status %d", status)
	}
}

func TestRemoteStation_BadBodyIsNone(t *testing.T) {
	bodies := map[string]string{
		"not json":            "sunny",
		"invalid units":       `{"temperature":300,"units":"kelvin"}`,
		"missing units":       `{"temperature":20}`,
		"missing temperature": `{"units":"celsius"}`,
		"null temperature":    `{"temperature":null,"units":"celsius"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			app := fiber.New(fiber.Config{DisableStartupMessage: true})
			app.Get("/weather", func(c *fiber.Ctx) error {
				return c.SendString(body)
			})
			base := testutil.StartApp(t, app)

			got := providers.NewRemoteStation(testClient(), base).GetWeatherData(context.Background())
			assert.True(t, got.IsNone())
		})
	}
}

func TestRemoteStation_ZeroDegreesIsAReading(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/weather", func(c *fiber.Ctx) error {
		return c.SendString(`{"temperature":0,"units":"celsius"}`)
	})
	base := testutil.StartApp(t, app)

	reading, ok := providers.NewRemoteStation(testClient(), base).GetWeatherData(context.Background()).Get()
	require.True(t, ok)
	assert.Equal(t, weather.Reading{Temperature: 0, Units: weather.Celsius}, reading)
}

func TestRemoteStation_Fahrenheit(t *testing.T) {
	base := stationServer(t, providers.NewDeterministicStation(
		option.Some(weather.Reading{Temperature: 68, Units: weather.Fahrenheit}),
	))

	reading, ok := providers.NewRemoteStation(testClient(), base+"/").GetWeatherData(context.Background()).Get()
	require.True(t, ok)
	assert.Equal(t, weather.Reading{Temperature: 68, Units: weather.Fahrenheit}, reading)
}

func TestRemoteAdapters_UnreachableIsNone(t *testing.T) {
	base := testutil.UnreachableURL(t)

	assert.True(t, providers.NewRemoteStation(testClient(), base).GetWeatherData(context.Background()).IsNone())
	assert.True(t, providers.NewRemoteReporter(testClient(), base).GetWeatherReport(context.Background(), weather.ReportRequest{
		Temperature: 20,
		Units:       weather.Celsius,
	}).IsNone())
}

func TestRemoteReporter_SendsJSON(t *testing.T) {
	var (
		gotContentType string
		gotRequest     weather.ReportRequest
	)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/report", func(c *fiber.Ctx) error {
		gotContentType = c.Get(fiber.HeaderContentType)
		if err := c.BodyParser(&gotRequest); err != nil {
			return err
		}
		return c.SendString("<html>rendered</html>")
	})
	base := testutil.StartApp(t, app)

	req := weather.ReportRequest{Temperature: 12.5, Units: weather.Celsius, Comment: weather.CommentPleasant}
	report, ok := providers.NewRemoteReporter(testClient(), base).GetWeatherReport(context.Background(), req).Get()
	require.True(t, ok)
	assert.Equal(t, "<html>rendered</html>", report)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, req, gotRequest)
}

func TestRemoteReporter_NonSuccessIsNone(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		app.Post("/report", func(c *fiber.Ctx) error {
			return c.Status(status).SendString("<html>should be ignored</html>")
		})
		base := testutil.StartApp(t, app)

		got := providers.NewRemoteReporter(testClient(), base).GetWeatherReport(context.Background(), weather.ReportRequest{
			Temperature: 20,
			Units:       weather.Celsius,
		})
		assert.True(t, got.IsNone(), "status %d", status)
	}
}

func TestRemoteReporter_AlwaysFailingServiceIsNone(t *testing.T) {
	base := reporterServer(t, providers.NewMemoryReporter(true))

	got := providers.NewRemoteReporter(testClient(), base).GetWeatherReport(context.Background(), weather.ReportRequest{
		Temperature: 20,
		Units:       weather.Celsius,
	})
	assert.True(t, got.IsNone())
}
