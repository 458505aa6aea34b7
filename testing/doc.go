// Package testing provides test utilities for the ShuffleRooster library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest): generated rosters, roster files on
// disk and a logger that writes to the test log.
//
// Key utilities:
//   - Roster: Deterministic RecordSet with Name/Email columns
//   - WriteCSV / WriteXLSX: Roster files in a per-test temp directory
//   - NewTestLogger: types.Logger backed by testing.TB
//
// Example usage:
//
//	import (
//	    "testing"
//	    rostertest "github.com/sanodmendis/ShuffleRooster/testing"
//	)
//
//	func TestMyFrontEnd(t *testing.T) {
//	    path := rostertest.WriteCSV(t, rostertest.Roster(28))
//	    src, _ := source.Open(path)
//	    // ...
//	}
package testing
