package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/config"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather/providers"
)

func TestNewStation(t *testing.T) {
	t.Run("random", func(t *testing.T) {
		s := newStation(&config.AppConfig{StationSource: config.StationSourceRandom})
		assert.IsType(t, &providers.RandomStation{}, s)
	})

	t.Run("openmeteo", func(t *testing.T) {
		s := newStation(&config.AppConfig{
			StationSource:    config.StationSourceOpenMeteo,
			StationLatitude:  -33.87,
			StationLongitude: 151.21,
			StationUnits:     "celsius",
		})
		assert.IsType(t, &providers.OpenMeteoStation{}, s)
	})
}

func TestNewStation_FromEnvironment(t *testing.T) {
	t.Setenv("STATION_SOURCE", "openmeteo")
	t.Setenv("STATION_LATITUDE", "51.5")
	t.Setenv("STATION_LONGITUDE", "-0.12")

	cfg, err := config.LoadServer()
	if assert.NoError(t, err) {
		assert.IsType(t, &providers.OpenMeteoStation{}, newStation(cfg))
	}
}
