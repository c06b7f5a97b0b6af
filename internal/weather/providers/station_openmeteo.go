package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

const openMeteoURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoStation reports the current temperature at a fixed coordinate
// from Open-Meteo. The station simulator can serve it instead of random data.
type OpenMeteoStation struct {
	name      string
	baseURL   string
	latitude  float64
	longitude float64
	units     weather.Units
	httpCfg   HTTPClientConfig
	circuit   *gobreaker.CircuitBreaker
}

// NewOpenMeteoStation creates a station for the given coordinate. An empty
// baseURL selects the public Open-Meteo endpoint.
func NewOpenMeteoStation(client *http.Client, baseURL string, lat, lon float64, units weather.Units) *OpenMeteoStation {
	if baseURL == "" {
		baseURL = openMeteoURL
	}
	if !units.Valid() {
		units = weather.Celsius
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoStation{
		name:      "openmeteo",
		baseURL:   baseURL,
		latitude:  lat,
		longitude: lon,
		units:     units,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteoStation) GetWeatherData(ctx context.Context) option.Option[weather.Reading] {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", p.latitude))
	values.Set("longitude", fmt.Sprintf("%f", p.longitude))
	values.Set("current_weather", "true")
	values.Set("temperature_unit", string(p.units))
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		fail(p.name, reasonFor(err), u, err)
		return option.None[weather.Reading]()
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
		} `json:"current_weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fail(p.name, reasonDecode, u, err)
		return option.None[weather.Reading]()
	}
	if payload.CurrentWeather == nil {
		fail(p.name, reasonInvalid, u, fmt.Errorf("response has no current_weather"))
		return option.None[weather.Reading]()
	}

	return option.Some(weather.Reading{
		Temperature: payload.CurrentWeather.Temperature,
		Units:       p.units,
	})
}
