package providers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

// RemoteStation reads from a weather station service over HTTP (GET {base}/weather).
type RemoteStation struct {
	name    string
	baseURL string
	client  *http.Client
}

// stationBody is the wire form of a Reading. Temperature is a pointer so an
// absent field is told apart from 0 degrees.
type stationBody struct {
	Temperature *float64      `json:"temperature" validate:"required"`
	Units       weather.Units `json:"units" validate:"oneof=celsius fahrenheit"`
}

func NewRemoteStation(client *http.Client, baseURL string) *RemoteStation {
	return &RemoteStation{
		name:    "station",
		baseURL: baseURL,
		client:  client,
	}
}

// GetWeatherData never fails: non-2xx responses, transport errors and bodies
// that are not a valid Reading all become None.
func (s *RemoteStation) GetWeatherData(ctx context.Context) option.Option[weather.Reading] {
	u := joinURL(s.baseURL, "/weather")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		fail(s.name, reasonTransport, u, err)
		return option.None[weather.Reading]()
	}

	resp, err := doRequest(s.client, req)
	if err != nil {
		fail(s.name, reasonFor(err), u, err)
		return option.None[weather.Reading]()
	}
	defer resp.Body.Close()

	var body stationBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fail(s.name, reasonDecode, u, err)
		return option.None[weather.Reading]()
	}
	if err := validate.Struct(body); err != nil {
		fail(s.name, reasonInvalid, u, err)
		return option.None[weather.Reading]()
	}

	return option.Some(weather.Reading{Temperature: *body.Temperature, Units: body.Units})
}
