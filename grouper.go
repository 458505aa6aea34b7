package shufflerooster

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/sanodmendis/ShuffleRooster/internal/logging"
	"github.com/sanodmendis/ShuffleRooster/internal/metrics"
	"github.com/sanodmendis/ShuffleRooster/rng"
	"github.com/sanodmendis/ShuffleRooster/strategy"
)

// Grouper assigns records to fixed-size groups.
//
// A run shuffles the records, buckets them sequentially into groups of the
// requested size, and dissolves an undersized trailing group by moving each
// of its members to a random earlier group.
//
// Thread Safety:
//   - Group is safe for concurrent use unless WithRandomSource supplied a
//     source that is not
//   - Input record sets are never modified
type Grouper struct {
	strategy    *strategy.Sequential
	random      RandomSource
	seed        uint64
	seeded      bool
	groupColumn string

	metrics MetricsCollector
	logger  Logger
}

// NewGrouper creates a Grouper.
//
// Parameters:
//   - opts: Optional configuration (seed, random source, shuffle, group column, logger, metrics)
//
// Returns:
//   - *Grouper: Initialized grouper
//
// Example:
//
//	rs := shufflerooster.NewRecordSet([]string{"Name"}, rows)
//	g := shufflerooster.NewGrouper(shufflerooster.WithSeed(7))
//	p, err := g.Group(rs, 4)
func NewGrouper(opts ...Option) *Grouper {
	return newGrouper(buildOptions(opts))
}

func newGrouper(o *options) *Grouper {
	g := &Grouper{
		strategy:    strategy.NewSequential(strategy.WithShuffle(!o.noShuffle)),
		random:      o.random,
		seed:        o.seed,
		seeded:      o.seeded,
		groupColumn: o.groupColumn,
		metrics:     o.metrics,
		logger:      o.logger,
	}

	if g.groupColumn == "" {
		g.groupColumn = DefaultGroupColumn
	}
	if g.metrics == nil {
		g.metrics = metrics.NewNop()
	}
	if g.logger == nil {
		g.logger = logging.Nop{}
	}

	return g
}

// Group partitions records into groups of groupSize.
//
// Parameters:
//   - records: Records to group (not modified)
//   - groupSize: Target members per group, 1 <= groupSize <= records.Len()
//
// Returns:
//   - *Partition: Assignments ordered by group id, shuffled order kept within a group
//   - error: *InvalidGroupSizeError (matches ErrInvalidGroupSize) when groupSize is out of range
func (g *Grouper) Group(records RecordSet, groupSize int) (*Partition, error) {
	start := time.Now()

	src, seed, seeded := g.source()

	plan, err := g.strategy.Plan(records.Len(), groupSize, src)
	if err != nil {
		if errors.Is(err, ErrInvalidGroupSize) {
			g.metrics.RecordInvalidGroupSize()
		}
		g.logger.Warn("grouping rejected", "records", records.Len(), "group_size", groupSize, "error", err)

		return nil, err
	}

	p := &Partition{
		ID:            uuid.NewString(),
		Header:        slices.Clone(records.Header),
		GroupColumn:   g.groupColumn,
		GroupSize:     groupSize,
		Seed:          seed,
		Seeded:        seeded,
		Redistributed: plan.Redistributed,
		Assignments:   make([]Assignment, 0, records.Len()),
	}
	for _, pos := range plan.Sorted() {
		idx := plan.Order[pos]
		p.Assignments = append(p.Assignments, Assignment{
			Index:  idx,
			Record: records.Records[idx].Clone(),
			Group:  plan.Groups[pos],
		})
	}

	if plan.Redistributed {
		g.metrics.RecordRedistribution(len(plan.Moved))
		g.logger.Debug("trailing group redistributed",
			"partition_id", p.ID,
			"group", plan.LastGroup,
			"size", plan.LastSize,
			"min_viable", plan.MinViable,
		)
	}

	groups := p.GroupCount()
	g.metrics.RecordPartition(records.Len(), groups, plan.Redistributed, time.Since(start).Seconds())
	g.logger.Debug("partition created",
		"partition_id", p.ID,
		"records", records.Len(),
		"group_size", groupSize,
		"groups", groups,
		"seed", seed,
		"seeded", seeded,
	)

	return p, nil
}

// source returns the random source for one run, plus the seed it was built from.
//
// Without WithSeed or WithRandomSource a seed is drawn from crypto/rand, so
// the run can still be replayed from Partition.Seed.
func (g *Grouper) source() (RandomSource, uint64, bool) {
	switch {
	case g.random != nil:
		return g.random, 0, false
	case g.seeded:
		return rng.New(g.seed), g.seed, true
	default:
		seed := rng.EntropySeed()
		return rng.New(seed), seed, true
	}
}
