// Package metrics provides MetricsCollector implementations: a silent
// default and a Prometheus collector.
package metrics

import "github.com/sanodmendis/ShuffleRooster/types"

// NopMetrics discards every measurement. It is the default collector of
// Grouper and Session.
type NopMetrics struct{}

var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop returns a collector that records nothing.
//
// Example:
//
//	g := shufflerooster.NewGrouper(shufflerooster.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (*NopMetrics) RecordPartition(int, int, bool, float64) {}
func (*NopMetrics) RecordRedistribution(int)                 {}
func (*NopMetrics) RecordInvalidGroupSize()                  {}
func (*NopMetrics) RecordLoad(string, int, bool)             {}
func (*NopMetrics) RecordExport(string, bool)                {}
