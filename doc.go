// Package shufflerooster provides a Go library for splitting a roster of
// records into randomized, near-equal groups of a requested size.
//
// ShuffleRooster shuffles the roster, buckets it sequentially into groups of
// the requested size and, when the trailing group is too small to stand on its
// own, dissolves it by spreading its members over the earlier groups. Records
// are opaque: their fields are carried from the source to the output unchanged
// with a group id column added.
//
// # Quick Start
//
// Grouping an in-memory roster:
//
//	import "github.com/sanodmendis/ShuffleRooster"
//
//	roster := shufflerooster.NewRecordSet([]string{"Name"}, rows)
//	p, err := shufflerooster.NewGrouper().Group(roster, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, id := range p.GroupIDs() {
//	    fmt.Println(id, p.Members(id))
//	}
//
// # Key Features
//
//   - Fair Shuffle: Fisher-Yates over a pluggable RandomSource
//   - Minimum Viable Groups: A trailing group smaller than size/2+1 is redistributed
//   - Reproducible Runs: Every seeded run records its seed for replay
//   - File Formats: CSV and XLSX input, CSV/XLSX/PDF/JSON output (see source and sink)
//   - Observability: Logger, MetricsCollector, Hooks and OpenTelemetry spans
//
// # Architecture
//
// A Session drives an interactive front end through a small state machine:
//
//	EMPTY → LOADED → GROUPED
//
// Load reads a RecordSource, CreateGroups runs the Grouper (and may be repeated),
// Save writes the current Partition to a RecordSink, and Clear starts over.
//
// # Advanced Usage
//
// Reproducible groups with hooks:
//
//	import (
//	    "github.com/sanodmendis/ShuffleRooster"
//	    "github.com/sanodmendis/ShuffleRooster/sink"
//	    "github.com/sanodmendis/ShuffleRooster/source"
//	)
//
//	hooks := &shufflerooster.Hooks{
//	    OnPartitioned: func(ctx context.Context, p *shufflerooster.Partition) error {
//	        log.Printf("created %d groups", p.GroupCount())
//	        return nil
//	    },
//	}
//
//	session := shufflerooster.NewSession(
//	    shufflerooster.WithSeed(2024),
//	    shufflerooster.WithHooks(hooks),
//	)
//	src, _ := source.Open("students.xlsx")
//	_ = session.Load(ctx, src)
//	_, _ = session.CreateGroups(ctx, 4)
//	out, _ := sink.Create("groups.pdf", sink.FormatPDF)
//	_ = session.Save(ctx, out)
//
// See the examples/ directory for complete working examples.
package shufflerooster
