package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// DefaultNamespace is the metric namespace used when none is given.
const DefaultNamespace = "shufflerooster"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Grouping metrics
	partitions       *prometheus.CounterVec
	partitionRecords prometheus.Histogram
	partitionGroups  prometheus.Histogram
	partitionLatency prometheus.Histogram
	redistributed    prometheus.Counter
	invalidSizes     prometheus.Counter

	// I/O metrics
	loads     *prometheus.CounterVec
	loadedRow *prometheus.CounterVec
	exports   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "shufflerooster" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.partitions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "partitions_total",
			Help:      "Total grouping runs by whether the trailing group was redistributed.",
		}, []string{"redistributed"})

		p.partitionRecords = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "records",
			Help:      "Number of records per grouping run.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 8), // 8 .. 1024
		})

		p.partitionGroups = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "groups",
			Help:      "Number of populated groups per grouping run.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		})

		p.partitionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "duration_seconds",
			Help:      "Latency of grouping runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10us .. ~160ms
		})

		p.redistributed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "redistributed_records_total",
			Help:      "Total records moved out of a dissolved trailing group.",
		})

		p.invalidSizes = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "grouping",
			Name:      "invalid_group_size_total",
			Help:      "Total grouping requests rejected for an out-of-range group size.",
		})

		p.loads = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "io",
			Name:      "loads_total",
			Help:      "Record source reads by format and result (success,failure).",
		}, []string{"format", "result"})

		p.loadedRow = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "io",
			Name:      "loaded_records_total",
			Help:      "Records read from sources by format.",
		}, []string{"format"})

		p.exports = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "io",
			Name:      "exports_total",
			Help:      "Partition exports by format and result (success,failure).",
		}, []string{"format", "result"})

		p.reg.MustRegister(p.partitions)
		p.reg.MustRegister(p.partitionRecords)
		p.reg.MustRegister(p.partitionGroups)
		p.reg.MustRegister(p.partitionLatency)
		p.reg.MustRegister(p.redistributed)
		p.reg.MustRegister(p.invalidSizes)
		p.reg.MustRegister(p.loads)
		p.reg.MustRegister(p.loadedRow)
		p.reg.MustRegister(p.exports)
	})
}

// GroupingMetrics implementation

// RecordPartition records a completed grouping run.
func (p *PrometheusCollector) RecordPartition(records, groups int, redistributed bool, duration float64) {
	p.ensureRegistered()
	p.partitions.WithLabelValues(strconv.FormatBool(redistributed)).Inc()
	p.partitionRecords.Observe(float64(records))
	p.partitionGroups.Observe(float64(groups))
	p.partitionLatency.Observe(duration)
}

// RecordRedistribution adds the number of moved records.
func (p *PrometheusCollector) RecordRedistribution(moved int) {
	p.ensureRegistered()
	p.redistributed.Add(float64(moved))
}

// RecordInvalidGroupSize increments the rejection counter.
func (p *PrometheusCollector) RecordInvalidGroupSize() {
	p.ensureRegistered()
	p.invalidSizes.Inc()
}

// IOMetrics implementation

// RecordLoad records a source read.
func (p *PrometheusCollector) RecordLoad(format string, rows int, success bool) {
	p.ensureRegistered()
	p.loads.WithLabelValues(format, result(success)).Inc()
	if success {
		p.loadedRow.WithLabelValues(format).Add(float64(rows))
	}
}

// RecordExport records a partition export.
func (p *PrometheusCollector) RecordExport(format string, success bool) {
	p.ensureRegistered()
	p.exports.WithLabelValues(format, result(success)).Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
