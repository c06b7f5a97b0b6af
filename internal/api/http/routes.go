package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/metrics"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

// NewApp returns a Fiber app with the shared error handler and middleware.
// Routes are registered by the caller; RegisterNotFound must come last.
func NewApp(name string, requestLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	if requestLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())

	return app
}

// RegisterHealth adds the readiness and liveness probes.
func RegisterHealth(app *fiber.App) {
	probe := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": "true"})
	}
	app.Get("/readyz", probe)
	app.Get("/healthz", probe)
}

// RegisterStationRoutes serves readings from station at GET /weather.
func RegisterStationRoutes(app *fiber.App, station weather.Station) {
	app.Get("/weather", func(c *fiber.Ctx) error {
		reading, ok := station.GetWeatherData(c.UserContext()).Get()
		if !ok {
			return fiber.NewError(fiber.StatusServiceUnavailable, "no weather data available")
		}
		return c.JSON(reading)
	})
}

// RegisterReporterRoutes renders reports with reporter at POST /report.
func RegisterReporterRoutes(app *fiber.App, reporter weather.Reporter) {
	app.Post("/report", func(c *fiber.Ctx) error {
		var req weather.ReportRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid report request")
		}

		report, ok := reporter.GetWeatherReport(c.UserContext(), req).Get()
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "report request rejected")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(report)
	})
}

// RegisterMetrics exposes Prometheus metrics at GET /metrics.
func RegisterMetrics(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}

// RegisterNotFound answers every unmatched request with 404.
func RegisterNotFound(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("Not found.")
	})
}
