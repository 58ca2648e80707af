package observability

import (
	"time"

	"github.com/rmacedo/nitro-admin-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the admin backend.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	opDuration     *prometheus.HistogramVec
	providerErrors *prometheus.CounterVec
	providerCalls  *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. A private registry avoids "duplicate collector"
// panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		opDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nitro_admin_operation_duration_seconds",
				Help:    "Duration of dashboard operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		providerErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nitro_admin_provider_errors_total",
				Help: "Total failed calls to the payments provider.",
			},
			[]string{"operation"},
		),
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nitro_admin_provider_calls_total",
				Help: "Total calls issued to the payments provider.",
			},
			[]string{"operation"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nitro_admin_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nitro_admin_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordOpDuration records the duration of a dashboard operation.
func (m *Metrics) RecordOpDuration(operation string, d time.Duration) {
	m.opDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrProviderCall counts an attempted provider call.
func (m *Metrics) IncrProviderCall(operation string) {
	m.providerCalls.WithLabelValues(operation).Inc()
}

// IncrProviderError counts a failed provider call.
func (m *Metrics) IncrProviderError(operation string) {
	m.providerErrors.WithLabelValues(operation).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// ClientSnapshot summarizes provider-call health for the dashboard's own
// metrics panel.
func (m *Metrics) ClientSnapshot(operations []string) *domain.ClientMetrics {
	var calls, errs float64
	for _, op := range operations {
		calls += getCounterValue(m.providerCalls, op)
		errs += getCounterValue(m.providerErrors, op)
	}
	hits := getCounterValue(m.cacheHits, "installments")
	misses := getCounterValue(m.cacheMisses, "installments")

	errorRate := float64(0)
	if calls > 0 {
		errorRate = errs / calls
	}
	cacheHitRate := float64(0)
	if hits+misses > 0 {
		cacheHitRate = hits / (hits + misses)
	}

	return &domain.ClientMetrics{
		ProviderCalls:  int64(calls),
		ProviderErrors: int64(errs),
		ErrorRate:      errorRate,
		CacheHitRate:   cacheHitRate,
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a
// given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
