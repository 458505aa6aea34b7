package types

import "context"

// RecordSink renders or persists a partition.
//
// Implementations must write every source column plus the group column, and
// should wrap write failures with ErrDestinationUnwritable.
type RecordSink interface {
	// WritePartition writes the partition in its tabular form.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - p: Partition to write
	//
	// Returns:
	//   - error: Write error wrapping ErrDestinationUnwritable (nil on success)
	WritePartition(ctx context.Context, p *Partition) error
}
