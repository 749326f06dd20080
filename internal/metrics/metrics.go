package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for tripmap
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Store Metrics
	StoreSavesTotal        *prometheus.CounterVec
	StoreFallbacksTotal    *prometheus.CounterVec
	StoreLoadFailuresTotal *prometheus.CounterVec

	// Business Metrics
	WeatherFetchesTotal *prometheus.CounterVec
	LoginAttemptsTotal  *prometheus.CounterVec
	SessionsCreated     prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tripmap_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tripmap_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Store Metrics
		StoreSavesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_store_saves_total",
				Help: "Successful store saves by store and adapter",
			},
			[]string{"store", "adapter"},
		),
		StoreFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_store_fallbacks_total",
				Help: "Store saves that failed on an adapter and moved to the next one",
			},
			[]string{"store", "adapter"},
		),
		StoreLoadFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_store_load_failures_total",
				Help: "Adapter reads that failed during a store load",
			},
			[]string{"store", "adapter"},
		),

		// Business Metrics
		WeatherFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_weather_fetches_total",
				Help: "Weather lookups by source (forecast, archive) and outcome",
			},
			[]string{"source", "outcome"},
		),
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripmap_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		SessionsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tripmap_sessions_created_total",
				Help: "Anonymous sessions created",
			},
		),
	}
}

// StoreSaved implements store.Observer
func (m *MetricsRegistry) StoreSaved(store, adapter string) {
	m.StoreSavesTotal.WithLabelValues(store, adapter).Inc()
}

// StoreFellBack implements store.Observer
func (m *MetricsRegistry) StoreFellBack(store, adapter string) {
	m.StoreFallbacksTotal.WithLabelValues(store, adapter).Inc()
}

// StoreLoadFailed implements store.Observer
func (m *MetricsRegistry) StoreLoadFailed(store, adapter string) {
	m.StoreLoadFailuresTotal.WithLabelValues(store, adapter).Inc()
}

// WeatherFetched records one weather lookup
func (m *MetricsRegistry) WeatherFetched(source, outcome string) {
	m.WeatherFetchesTotal.WithLabelValues(source, outcome).Inc()
}

// LoginAttempted records one login attempt
func (m *MetricsRegistry) LoginAttempted(outcome string) {
	m.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}

// SessionCreated counts one new anonymous session
func (m *MetricsRegistry) SessionCreated() {
	m.SessionsCreated.Inc()
}
