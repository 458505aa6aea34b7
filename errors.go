package shufflerooster

import "github.com/sanodmendis/ShuffleRooster/types"

// Sentinel errors re-exported from the types package. Check them with errors.Is.
var (
	// ErrInvalidGroupSize is returned when the group size is outside [1, number of records].
	ErrInvalidGroupSize = types.ErrInvalidGroupSize

	// ErrNoRecords is returned when there are no records to group.
	ErrNoRecords = types.ErrNoRecords

	// ErrNoPartition is returned by Session.Save before any groups were created.
	ErrNoPartition = types.ErrNoPartition

	// ErrSourceUnreadable is returned when a record source cannot be read or parsed.
	ErrSourceUnreadable = types.ErrSourceUnreadable

	// ErrDestinationUnwritable is returned when a sink cannot write its output.
	ErrDestinationUnwritable = types.ErrDestinationUnwritable

	// ErrUnsupportedFormat is returned for file formats without a source or sink.
	ErrUnsupportedFormat = types.ErrUnsupportedFormat

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig
)
