package testutil

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// CheckPartition reports the first structural violation in p for a roster of
// records grouped by groupSize, or nil when p is consistent.
//
// Checked properties:
//   - every record appears exactly once (by index) with its original fields
//   - group ids are contiguous from 1 and assignments are in ascending group order
//   - no group is larger than groupSize plus the number of redistributed records
//   - only the last bucket may be dissolved, and only when it was undersized
//
// Parameters:
//   - records: Roster that was grouped
//   - groupSize: Requested group size
//   - p: Partition to check
func CheckPartition(records types.RecordSet, groupSize int, p *types.Partition) error {
	n := records.Len()
	if p.Len() != n {
		return fmt.Errorf("partition has %d assignments, roster has %d records", p.Len(), n)
	}

	seen := make([]bool, n)
	prev := 0
	for i, a := range p.Assignments {
		if a.Index < 0 || a.Index >= n {
			return fmt.Errorf("assignment %d has out of range index %d", i, a.Index)
		}
		if seen[a.Index] {
			return fmt.Errorf("record %d assigned twice", a.Index)
		}
		seen[a.Index] = true
		if !slices.Equal(a.Record.Fields, records.Records[a.Index].Fields) {
			return fmt.Errorf("record %d fields changed: %q != %q", a.Index,
				strings.Join(a.Record.Fields, ","), strings.Join(records.Records[a.Index].Fields, ","))
		}
		if a.Group < prev {
			return fmt.Errorf("assignment %d has group %d after group %d", i, a.Group, prev)
		}
		prev = a.Group
	}

	ids := p.GroupIDs()
	for i, id := range ids {
		if id != i+1 {
			return fmt.Errorf("group ids %v are not contiguous from 1", ids)
		}
	}

	buckets := (n + groupSize - 1) / groupSize
	last := n - (buckets-1)*groupSize
	dissolve := buckets > 1 && last < groupSize/2+1

	switch {
	case dissolve && len(ids) != buckets-1:
		return fmt.Errorf("expected %d groups after dissolving a trailing bucket of %d, got %d", buckets-1, last, len(ids))
	case !dissolve && len(ids) != buckets:
		return fmt.Errorf("expected %d groups, got %d", buckets, len(ids))
	case dissolve != p.Redistributed:
		return fmt.Errorf("redistributed flag is %t, expected %t", p.Redistributed, dissolve)
	}

	limit := groupSize
	if dissolve {
		limit += last
	}
	for id, size := range p.Sizes() {
		if size > limit {
			return fmt.Errorf("group %d has %d members, limit is %d", id, size, limit)
		}
		if !dissolve && size != groupSize && id != len(ids) {
			return fmt.Errorf("group %d has %d members, expected %d", id, size, groupSize)
		}
	}

	return nil
}

// AssertPartitionConsistent fails the test when CheckPartition reports a violation.
func AssertPartitionConsistent(t testing.TB, records types.RecordSet, groupSize int, p *types.Partition) {
	t.Helper()

	if err := CheckPartition(records, groupSize, p); err != nil {
		t.Fatalf("inconsistent partition: %v", err)
	}
}
