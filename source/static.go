package source

import (
	"context"
	"sync"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Static implements a record source with a fixed record set.
type Static struct {
	mu      sync.RWMutex
	records types.RecordSet
}

var _ types.RecordSource = (*Static)(nil)

// NewStatic creates a new static record source.
//
// The source returns a copy of the same record set on every read.
// Useful for testing and for callers that build rosters in memory.
//
// Parameters:
//   - records: Fixed record set
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	rs := types.NewRecordSet([]string{"Name"}, [][]string{{"Ada"}, {"Linus"}, {"Grace"}})
//	src := source.NewStatic(rs)
//	if err := session.Load(ctx, src); err != nil { /* handle */ }
func NewStatic(records types.RecordSet) *Static {
	return &Static{
		records: records.Clone(),
	}
}

// ReadRecords returns a copy of the static record set.
//
// Returns:
//   - types.RecordSet: Deep copy of the records
//   - error: Only if ctx is already done
func (s *Static) ReadRecords(ctx context.Context) (types.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return types.RecordSet{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records.Clone(), nil
}

// Format returns "static".
func (s *Static) Format() string {
	return "static"
}

// Update replaces the record set.
//
// Parameters:
//   - records: New record set
//
// Example:
//
//	src := source.NewStatic(firstTerm)
//	// Later: swap in the next roster
//	src.Update(secondTerm)
func (s *Static) Update(records types.RecordSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records.Clone()
}
