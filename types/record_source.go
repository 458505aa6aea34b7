package types

import "context"

// RecordSource provides the records to be grouped.
//
// Implementations can read various media:
//   - Static: fixed in-memory record set
//   - CSV: comma separated file with a header row
//   - XLSX: first worksheet of an Excel workbook
//
// Implementations must preserve field order and row order, and should wrap
// read or parse failures with ErrSourceUnreadable.
type RecordSource interface {
	// ReadRecords returns all available records.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - RecordSet: Header and records in source order
	//   - error: Read error wrapping ErrSourceUnreadable (nil on success)
	ReadRecords(ctx context.Context) (RecordSet, error)
}
