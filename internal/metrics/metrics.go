// Package metrics holds the Prometheus collectors of the daemon.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopvoice_commands_total",
		Help: "Voice commands processed, by resolved action and outcome.",
	}, []string{"action", "status"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shopvoice_pipeline_duration_seconds",
		Help:    "Time spent interpreting one command.",
		Buckets: prometheus.DefBuckets,
	})

	HistoryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopvoice_history_failures_total",
		Help: "History writes that failed and were dropped.",
	})

	ClassifierErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopvoice_classifier_errors_total",
		Help: "Classifier calls that failed, by backend.",
	}, []string{"backend"})
)

// Status labels for CommandsTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
