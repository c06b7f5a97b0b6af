package weather

import (
	"context"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
)

const (
	CommentCold     = "It's freezing cold!"
	CommentHot      = "It's scorching hot!"
	CommentPleasant = "The weather is quite pleasant!"
)

// Classify returns a comment for the reading in its own units.
// Band edges (10/35 °C, 50/95 °F) are pleasant.
func Classify(r Reading) string {
	switch {
	case (r.Units == Celsius && r.Temperature < 10) ||
		(r.Units == Fahrenheit && r.Temperature < 50):
		return CommentCold
	case (r.Units == Celsius && r.Temperature > 35) ||
		(r.Units == Fahrenheit && r.Temperature > 95):
		return CommentHot
	default:
		return CommentPleasant
	}
}

// FahrenheitToCelsius converts f degrees Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// Normalize returns r expressed in Celsius.
func Normalize(r Reading) Reading {
	if r.Units == Fahrenheit {
		return Reading{Temperature: FahrenheitToCelsius(r.Temperature), Units: Celsius}
	}
	return Reading{Temperature: r.Temperature, Units: Celsius}
}

// SyncOnce reads from station, comments on the raw reading, and submits the
// Celsius-normalized reading to reporter. The reporter is not called when the
// station has no data.
func SyncOnce(ctx context.Context, station Station, reporter Reporter) option.Option[string] {
	reading, ok := station.GetWeatherData(ctx).Get()
	if !ok {
		return option.None[string]()
	}

	comment := Classify(reading)
	normalized := Normalize(reading)

	report, ok := reporter.GetWeatherReport(ctx, ReportRequest{
		Temperature: normalized.Temperature,
		Units:       normalized.Units,
		Comment:     comment,
	}).Get()
	if !ok {
		return option.None[string]()
	}
	return option.Some(report)
}
