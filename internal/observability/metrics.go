package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// risk, trigger, and claim pipelines.
type Metrics struct {
	ProfilesComputed prometheus.Counter
	ProfileDuration  prometheus.Histogram

	TriggerBatches    prometheus.Counter
	TriggersEvaluated *prometheus.CounterVec // labels: parameter
	TriggersBreached  *prometheus.CounterVec // labels: parameter
	BatchDuration     prometheus.Histogram

	ClaimsAssessed *prometheus.CounterVec // labels: disaster_type, status

	// Provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider={open_meteo,open_elevation}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider
	ElevationCache   *prometheus.CounterVec   // labels: backend={lru,redis}, result={hit,miss}

	LocationsSkipped prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ProfilesComputed,
		m.ProfileDuration,
		m.TriggerBatches,
		m.TriggersEvaluated,
		m.TriggersBreached,
		m.BatchDuration,
		m.ClaimsAssessed,
		m.ProviderRequests,
		m.ProviderDuration,
		m.ElevationCache,
		m.LocationsSkipped,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ProfilesComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "profiles_computed_total",
			Help:      "Total risk profiles computed.",
		}),
		ProfileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_risk",
			Name:      "profile_duration_seconds",
			Help:      "Duration of a single risk profile computation including fetches.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		TriggerBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "trigger_batches_total",
			Help:      "Total parametric trigger batch evaluations.",
		}),
		TriggersEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "triggers_evaluated_total",
			Help:      "Trigger rules evaluated, by parameter.",
		}, []string{"parameter"}),
		TriggersBreached: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "triggers_breached_total",
			Help:      "Trigger rules breached, by parameter.",
		}, []string{"parameter"}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "climate_risk",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a complete multi-location batch evaluation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ClaimsAssessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "claims_assessed_total",
			Help:      "Claim assessments, by disaster type and disposition.",
		}, []string{"disaster_type", "status"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "provider_requests_total",
			Help:      "Upstream data provider requests, by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "climate_risk",
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"provider"}),
		ElevationCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "elevation_cache_total",
			Help:      "Elevation cache lookups, by backend and result.",
		}, []string{"backend", "result"}),
		LocationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "climate_risk",
			Name:      "locations_skipped_total",
			Help:      "Locations skipped in batch evaluations due to fetch failures.",
		}),
	}
}
