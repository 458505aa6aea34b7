// Package types provides core type definitions and interfaces for the ShuffleRooster library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root package and the source, sink and strategy implementations.
//
// Key types:
//   - Record / RecordSet: Rows loaded from a RecordSource
//   - Assignment: A record paired with its group id
//   - Partition: The complete record-to-group mapping of one grouping run
//   - RandomSource: Injectable uniform integer source
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
