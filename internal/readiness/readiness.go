// Package readiness blocks startup until a dependency's health endpoint answers.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ErrNotReady is returned when a service did not answer 2xx before the timeout.
var ErrNotReady = errors.New("service did not become available")

// WaitForService polls healthURL every interval until it returns a 2xx
// status or timeout elapses. Cancelling ctx aborts the wait with ctx.Err().
func WaitForService(ctx context.Context, client *http.Client, healthURL string, interval, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		err := probe(waitCtx, client, healthURL)
		if err == nil {
			slog.Info("service is available", "url", healthURL)
			return nil
		}
		slog.Debug("waiting for service", "url", healthURL, "error", err)

		timer := time.NewTimer(interval)
		select {
		case <-waitCtx.Done():
			timer.Stop()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %s within %s", ErrNotReady, healthURL, timeout)
		case <-timer.C:
		}
	}
}

func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
