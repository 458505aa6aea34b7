package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ShuffleRooster library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Grouping errors - returned by the Grouper and Session.
var (
	// ErrInvalidGroupSize is returned when the group size is outside [1, number of records].
	ErrInvalidGroupSize = errors.New("invalid group size")

	// ErrNoRecords is returned when there are no records to group.
	ErrNoRecords = errors.New("no records")

	// ErrNoPartition is returned when an operation needs groups that have not been created yet.
	ErrNoPartition = errors.New("no groups created")
)

// Collaborator errors - returned by RecordSource and RecordSink implementations.
var (
	// ErrSourceUnreadable is returned when a record source cannot be read or parsed.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrDestinationUnwritable is returned when a record sink cannot write its output.
	ErrDestinationUnwritable = errors.New("destination unwritable")

	// ErrUnsupportedFormat is returned for file formats without a source or sink.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InvalidGroupSizeError describes a rejected group size.
//
// It matches ErrInvalidGroupSize with errors.Is.
type InvalidGroupSizeError struct {
	// Size is the requested group size.
	Size int

	// Records is the number of records that were to be grouped.
	Records int
}

// NewInvalidGroupSizeError creates an InvalidGroupSizeError.
//
// Parameters:
//   - size: Requested group size
//   - records: Number of records available
//
// Returns:
//   - *InvalidGroupSizeError: Error matching ErrInvalidGroupSize
func NewInvalidGroupSizeError(size, records int) *InvalidGroupSizeError {
	return &InvalidGroupSizeError{Size: size, Records: records}
}

func (e *InvalidGroupSizeError) Error() string {
	return fmt.Sprintf("invalid group size %d: must be between 1 and %d", e.Size, e.Records)
}

// Is reports whether target is ErrInvalidGroupSize.
func (e *InvalidGroupSizeError) Is(target error) bool {
	return target == ErrInvalidGroupSize
}

// ValidateGroupSize checks 1 <= size <= records.
//
// Parameters:
//   - size: Requested group size
//   - records: Number of records available
//
// Returns:
//   - error: *InvalidGroupSizeError when out of range, nil otherwise
func ValidateGroupSize(size, records int) error {
	if size < 1 || size > records {
		return NewInvalidGroupSizeError(size, records)
	}

	return nil
}
