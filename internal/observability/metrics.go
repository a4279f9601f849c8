package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "climate_risk"

// Metrics - счётчики и гистограммы сервиса оценки климатического риска
type Metrics struct {
	AssessmentsComputed *prometheus.CounterVec // labels: scenario
	AssessmentDuration  prometheus.Histogram
	GridsBuilt          *prometheus.CounterVec // labels: resolution
	GridCells           prometheus.Histogram

	// Кеш
	CacheLookups  *prometheus.CounterVec // labels: kind={assessment,grid,other}, result={hit,miss}
	CacheDegraded prometheus.Counter
	CacheEntries  prometheus.Gauge

	// Источники данных
	DataSourceFallbacks *prometheus.CounterVec // labels: hazard
	DataSourceDuration  prometheus.Histogram

	EventsPublishFailed prometheus.Counter
}

// NewMetrics создаёт и регистрирует метрики в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AssessmentsComputed,
		m.AssessmentDuration,
		m.GridsBuilt,
		m.GridCells,
		m.CacheLookups,
		m.CacheDegraded,
		m.CacheEntries,
		m.DataSourceFallbacks,
		m.DataSourceDuration,
		m.EventsPublishFailed,
	)
	return m
}

// NewMetricsForTesting создаёт метрики без регистрации, чтобы тесты не паниковали
// с "duplicate metrics collector registration".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		AssessmentsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_computed_total",
			Help:      "Risk assessments computed by the aggregation engine (cache misses).",
		}, []string{"scenario"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a single risk assessment computation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		GridsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grids_built_total",
			Help:      "Hexagonal risk grids built, by H3 resolution.",
		}, []string{"resolution"}),
		GridCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grid_cells",
			Help:      "Number of cells per built grid.",
			Buckets:   []float64{7, 19, 37, 61, 91},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by entry kind and result.",
		}, []string{"kind", "result"}),
		CacheDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_degraded_total",
			Help:      "Cache backend failures absorbed by computing directly.",
		}),
		CacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Entries held by the in-process cache after the last sweep.",
		}),
		DataSourceFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datasource_fallbacks_total",
			Help:      "Live hazard data source failures degraded to the synthetic fallback.",
		}, []string{"hazard"}),
		DataSourceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "datasource_request_duration_seconds",
			Help:      "Live hazard data source request duration.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		EventsPublishFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_publish_failed_total",
			Help:      "Structured events that could not be delivered to a publisher.",
		}),
	}
}
