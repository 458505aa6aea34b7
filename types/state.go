package types

// State represents the lifecycle state of a grouping session.
//
// States follow a defined progression during normal operation:
//
//	StateEmpty → StateLoaded → StateGrouped
//
// Loading a new record set from any state returns to StateLoaded; clearing
// returns to StateEmpty.
type State int

const (
	// StateEmpty indicates no records are loaded.
	StateEmpty State = iota

	// StateLoaded indicates records are loaded but no groups have been created.
	StateLoaded

	// StateGrouped indicates a partition has been created for the loaded records.
	StateGrouped
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoaded:
		return "Loaded"
	case StateGrouped:
		return "Grouped"
	default:
		return "Unknown"
	}
}
