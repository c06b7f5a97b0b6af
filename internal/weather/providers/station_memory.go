package providers

import (
	"context"
	"math"
	"math/rand"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

// Range of temperatures synthesized by RandomStation, in Celsius.
const (
	MinRandomTemperature = -20.0
	MaxRandomTemperature = 50.0
)

// RandomStation synthesizes Celsius readings uniformly distributed over
// [MinRandomTemperature, MaxRandomTemperature]. It always has data.
type RandomStation struct {
	rnd         func() float64
	wholeDegree bool
}

// RandomStationOption customizes a RandomStation.
type RandomStationOption func(*RandomStation)

// WithRandSource replaces the source of uniform values in [0, 1).
func WithRandSource(fn func() float64) RandomStationOption {
	return func(s *RandomStation) { s.rnd = fn }
}

// WithWholeDegrees rounds readings to the nearest degree.
func WithWholeDegrees() RandomStationOption {
	return func(s *RandomStation) { s.wholeDegree = true }
}

func NewRandomStation(opts ...RandomStationOption) *RandomStation {
	s := &RandomStation{rnd: rand.Float64}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RandomStation) GetWeatherData(_ context.Context) option.Option[weather.Reading] {
	t := MinRandomTemperature + s.rnd()*(MaxRandomTemperature-MinRandomTemperature)
	if s.wholeDegree {
		t = math.Round(t)
	}
	return option.Some(weather.Reading{Temperature: t, Units: weather.Celsius})
}

// DeterministicStation returns the same pre-supplied result on every call.
type DeterministicStation struct {
	data option.Option[weather.Reading]
}

func NewDeterministicStation(data option.Option[weather.Reading]) *DeterministicStation {
	return &DeterministicStation{data: data}
}

func (s *DeterministicStation) GetWeatherData(_ context.Context) option.Option[weather.Reading] {
	return s.data
}
