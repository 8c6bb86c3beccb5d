// Package metrics exposes Prometheus instrumentation for fare searches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeSuccess       = "success"
	OutcomeInvalid       = "invalid_request"
	OutcomePageStructure = "page_structure"
	OutcomeParse         = "parse"
	OutcomeTimeout       = "timeout"
	OutcomeAcquisition   = "acquisition"
	OutcomeError         = "error"
)

// Metrics holds all prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SearchesTotal       *prometheus.CounterVec
	SearchDuration      prometheus.Histogram
	AcquisitionAttempts *prometheus.CounterVec
	FlightsParsed       prometheus.Counter
	ChatRequests        *prometheus.CounterVec
}

// NewMetrics registers the metrics on a dedicated registry under namespace.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of fare searches by outcome",
		}, []string{"outcome"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to acquire and parse a results page",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
		AcquisitionAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acquisition_attempts_total",
			Help:      "The total number of page acquisition attempts",
		}, []string{"acquirer"}),
		FlightsParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_parsed_total",
			Help:      "The total number of flight records parsed",
		}),
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "The total number of assistant chat requests by status",
		}, []string{"status"}),
	}
}

// ObserveSearch records a finished search.
func (m *Metrics) ObserveSearch(outcome string, elapsed time.Duration, flights int) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(elapsed.Seconds())
	if flights > 0 {
		m.FlightsParsed.Add(float64(flights))
	}
}

// ObserveAttempt records one call to a page acquirer.
func (m *Metrics) ObserveAttempt(acquirer string) {
	if m == nil {
		return
	}
	m.AcquisitionAttempts.WithLabelValues(acquirer).Inc()
}

// ObserveChat records one assistant chat request.
func (m *Metrics) ObserveChat(status string) {
	if m == nil {
		return
	}
	m.ChatRequests.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
