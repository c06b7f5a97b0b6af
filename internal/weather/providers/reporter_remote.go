package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/option"
	"github.com/Jamie-Rodriguez/hex-contracts-demo/internal/weather"
)

// RemoteReporter submits report requests to a reporter service (POST {base}/report).
type RemoteReporter struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewRemoteReporter(client *http.Client, baseURL string) *RemoteReporter {
	return &RemoteReporter{
		name:    "reporter",
		baseURL: baseURL,
		client:  client,
	}
}

// GetWeatherReport returns the response body on 2xx and None for anything else.
func (r *RemoteReporter) GetWeatherReport(ctx context.Context, req weather.ReportRequest) option.Option[string] {
	u := joinURL(r.baseURL, "/report")

	body, err := json.Marshal(req)
	if err != nil {
		fail(r.name, reasonInvalid, u, err)
		return option.None[string]()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		fail(r.name, reasonTransport, u, err)
		return option.None[string]()
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := doRequest(r.client, httpReq)
	if err != nil {
		fail(r.name, reasonFor(err), u, err)
		return option.None[string]()
	}
	defer resp.Body.Close()

	report, err := io.ReadAll(resp.Body)
	if err != nil {
		fail(r.name, reasonTransport, u, err)
		return option.None[string]()
	}

	return option.Some(string(report))
}
