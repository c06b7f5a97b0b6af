// Package metrics holds the Prometheus collectors for the commentator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weather_commentator"

// Cycle outcomes.
const (
	OutcomeReport = "report"
	OutcomeNone   = "none"
)

var (
	// Cycles counts completed poll cycles by outcome.
	Cycles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycles_total",
		Help:      "Poll cycles completed, by outcome.",
	}, []string{"outcome"})

	// AdapterFailures counts calls to a remote dependency that collapsed to no data.
	AdapterFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adapter_failures_total",
		Help:      "Remote adapter calls that produced no data, by adapter and reason.",
	}, []string{"adapter", "reason"})
)

func init() {
	prometheus.MustRegister(Cycles, AdapterFailures)
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
