package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EngineRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockpulse_engine_requests_total",
			Help: "Total number of engine calls",
		},
		[]string{"operation", "status"}, // status: success|error
	)

	EngineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockpulse_engine_latency_seconds",
			Help:    "Engine call latency including the provider fetch",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation"},
	)

	ProviderFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockpulse_provider_fetches_total",
			Help: "Total number of price history fetches",
		},
		[]string{"provider", "status"}, // status: success|not_found|rate_limited|unauthorized|network
	)

	ProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockpulse_provider_latency_seconds",
			Help:    "Price history fetch latency",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"provider"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockpulse_cache_lookups_total",
			Help: "Provider cache lookups",
		},
		[]string{"kind", "result"}, // result: hit|miss|error
	)
)

var initOnce sync.Once

// Init registers all collectors with the default registry.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(EngineRequests)
		prometheus.MustRegister(EngineLatency)
		prometheus.MustRegister(ProviderFetches)
		prometheus.MustRegister(ProviderLatency)
		prometheus.MustRegister(CacheLookups)
	})
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordEngineCall records one engine operation.
func RecordEngineCall(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	EngineRequests.WithLabelValues(operation, status).Inc()
	EngineLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordProviderFetch records one provider fetch; status is "success" or a provider error kind.
func RecordProviderFetch(provider, status string, duration time.Duration) {
	ProviderFetches.WithLabelValues(provider, status).Inc()
	ProviderLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordCacheLookup records a cache hit, miss or error.
func RecordCacheLookup(kind, result string) {
	CacheLookups.WithLabelValues(kind, result).Inc()
}
