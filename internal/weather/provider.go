package weather

import (
	"context"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
)

// Station abstracts a source of temperature readings (random generator,
// fixed fixture, remote HTTP service).
// Implementations collapse every failure into None.
type Station interface {
	GetWeatherData(ctx context.Context) option.Option[Reading]
}

// Reporter turns a normalized reading plus comment into a rendered report.
// Implementations collapse rejections and transport failures into None.
type Reporter interface {
	GetWeatherReport(ctx context.Context, req ReportRequest) option.Option[string]
}
