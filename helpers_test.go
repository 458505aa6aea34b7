package shufflerooster

import (
	"fmt"
	"sync"

	"github.com/sanodmendis/ShuffleRooster/internal/metrics"
)

// roster builds a single-column record set named s0, s1, ...
func roster(n int) RecordSet {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("s%d", i)}
	}

	return NewRecordSet([]string{"Name"}, rows)
}

// recordingMetrics counts calls on top of the no-op collector.
type recordingMetrics struct {
	*metrics.NopMetrics

	mu             sync.Mutex
	partitions     int
	redistributed  int
	moved          int
	invalidSizes   int
	loads          map[string]int
	failedLoads    int
	exports        map[string]int
	failedExports  int
	lastGroupCount int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		NopMetrics: metrics.NewNop(),
		loads:      make(map[string]int),
		exports:    make(map[string]int),
	}
}

func (m *recordingMetrics) RecordPartition(_, groups int, redistributed bool, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partitions++
	m.lastGroupCount = groups
	if redistributed {
		m.redistributed++
	}
}

func (m *recordingMetrics) RecordRedistribution(moved int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moved += moved
}

func (m *recordingMetrics) RecordInvalidGroupSize() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidSizes++
}

func (m *recordingMetrics) RecordLoad(format string, rows int, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !success {
		m.failedLoads++
		return
	}
	m.loads[format] += rows
}

func (m *recordingMetrics) RecordExport(format string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !success {
		m.failedExports++
		return
	}
	m.exports[format]++
}
