package shufflerooster

import "github.com/sanodmendis/ShuffleRooster/types"

// Re-export types from the types package.
//
// The collaborator packages (strategy, source, sink) depend on types only,
// which keeps them free of import cycles while callers can still write
// shufflerooster.Partition, shufflerooster.Logger and so on.
type (
	State      = types.State
	Record     = types.Record
	RecordSet  = types.RecordSet
	Assignment = types.Assignment
	Partition  = types.Partition

	InvalidGroupSizeError = types.InvalidGroupSizeError
)

// Re-export interfaces from the types package for convenience.
type (
	RandomSource     = types.RandomSource
	RecordSource     = types.RecordSource
	RecordSink       = types.RecordSink
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export State constants from the types package.
const (
	StateEmpty   = types.StateEmpty
	StateLoaded  = types.StateLoaded
	StateGrouped = types.StateGrouped
)

// DefaultGroupColumn is the name of the column holding group ids in tabular output.
const DefaultGroupColumn = types.DefaultGroupColumn

// NewRecordSet builds a RecordSet from a header and raw rows. See types.NewRecordSet.
func NewRecordSet(header []string, rows [][]string) RecordSet {
	return types.NewRecordSet(header, rows)
}
