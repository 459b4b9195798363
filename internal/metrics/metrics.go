// Package metrics provides Prometheus metrics for revstore
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for revstore
type Metrics struct {
	// Facade operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Diff engine metrics
	ComparesTotal      *prometheus.CounterVec
	CompareDuration    prometheus.Histogram
	SimilarityRatio    prometheus.Histogram
	SegmentsPerCompare prometheus.Histogram

	// Version store metrics
	VersionsSavedTotal     prometheus.Counter
	HistoriesClearedTotal  prometheus.Counter
	PersistenceFaultsTotal prometheus.Counter
	DocumentsResident      prometheus.Gauge
	VersionsResident       prometheus.Gauge

	// Process metrics
	UptimeSeconds prometheus.Gauge
	StartTime     time.Time
}

// NewMetrics creates and registers all metrics on the default registry
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all metrics on the given registerer. Tests
// pass a fresh registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		StartTime: time.Now(),
	}

	// Facade operation metrics
	m.OperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revstore_operations_total",
			Help: "Total number of facade operations",
		},
		[]string{"operation", "status"},
	)

	m.OperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "revstore_operation_duration_seconds",
			Help:    "Duration of facade operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Diff engine metrics
	m.ComparesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revstore_compares_total",
			Help: "Total number of comparisons by granularity",
		},
		[]string{"granularity"},
	)

	m.CompareDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revstore_compare_duration_seconds",
			Help:    "Duration of comparisons in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	m.SimilarityRatio = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revstore_similarity_ratio",
			Help:    "Distribution of computed similarity ratios",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	m.SegmentsPerCompare = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revstore_segments_per_compare",
			Help:    "Number of segments produced per comparison",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// Version store metrics
	m.VersionsSavedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "revstore_versions_saved_total",
			Help: "Total number of saved versions",
		},
	)

	m.HistoriesClearedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "revstore_histories_cleared_total",
			Help: "Total number of cleared document histories",
		},
	)

	m.PersistenceFaultsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "revstore_persistence_faults_total",
			Help: "Total number of absorbed persistence faults",
		},
	)

	m.DocumentsResident = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "revstore_documents_resident",
			Help: "Number of document histories resident in memory",
		},
	)

	m.VersionsResident = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "revstore_versions_resident",
			Help: "Number of versions resident in memory",
		},
	)

	// Process metrics
	m.UptimeSeconds = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "revstore_uptime_seconds",
			Help: "Process uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.UptimeSeconds.Set(time.Since(m.StartTime).Seconds())
	}
}

// RecordOperation records a facade operation with its status
func (m *Metrics) RecordOperation(operation string, status string, duration time.Duration) {
	m.OperationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCompare records one comparison and its derived similarity
func (m *Metrics) RecordCompare(granularity string, segments int, similarity float64, duration time.Duration) {
	m.ComparesTotal.WithLabelValues(granularity).Inc()
	m.CompareDuration.Observe(duration.Seconds())
	m.SimilarityRatio.Observe(similarity)
	m.SegmentsPerCompare.Observe(float64(segments))
}

// UpdateStoreStats updates resident history gauges
func (m *Metrics) UpdateStoreStats(documents, versions int) {
	m.DocumentsResident.Set(float64(documents))
	m.VersionsResident.Set(float64(versions))
}
