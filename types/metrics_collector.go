package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	GroupingMetrics
	IOMetrics
}

// GroupingMetrics defines metrics for grouping runs.
type GroupingMetrics interface {
	// RecordPartition records a completed grouping run.
	//
	// Parameters:
	//   - records: Number of records grouped
	//   - groups: Number of populated groups in the result
	//   - redistributed: true if the trailing group was dissolved
	//   - duration: Time taken in seconds
	RecordPartition(records, groups int, redistributed bool, duration float64)

	// RecordRedistribution records how many records were moved out of a dissolved trailing group.
	RecordRedistribution(moved int)

	// RecordInvalidGroupSize records a rejected grouping request.
	RecordInvalidGroupSize()
}

// IOMetrics defines metrics for record sources and sinks.
type IOMetrics interface {
	// RecordLoad records a record source read.
	//
	// Parameters:
	//   - format: Source format ("csv", "xlsx", "static")
	//   - rows: Number of records read (0 on failure)
	//   - success: true if the read succeeded
	RecordLoad(format string, rows int, success bool)

	// RecordExport records a partition export.
	//
	// Parameters:
	//   - format: Sink format ("csv", "xlsx", "pdf", "json", "table")
	//   - success: true if the write succeeded
	RecordExport(format string, success bool)
}
