package strategy

import (
	"slices"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Plan is the index-level outcome of one grouping run.
//
// Order and Groups are parallel slices over shuffled positions: the record at
// original index Order[i] belongs to group Groups[i].
type Plan struct {
	// Order maps shuffled position to original record index.
	Order []int

	// Groups holds the final group id per shuffled position.
	Groups []int

	// Buckets is the number of groups produced by bucketing, before rebalancing.
	Buckets int

	// LastGroup is the highest group id produced by bucketing.
	LastGroup int

	// LastSize is the member count of LastGroup before rebalancing.
	LastSize int

	// MinViable is the trailing group threshold, GroupSize/2 + 1.
	MinViable int

	// Redistributed reports whether LastGroup was dissolved.
	Redistributed bool

	// Moved maps the original index of every redistributed record to its new group.
	Moved map[int]int
}

// Sorted returns positions ordered by ascending group id, keeping shuffled
// order within each group.
func (p *Plan) Sorted() []int {
	positions := Identity(len(p.Groups))
	slices.SortStableFunc(positions, func(a, b int) int {
		return p.Groups[a] - p.Groups[b]
	})

	return positions
}

// Sequential implements shuffle, sequential bucketing and trailing-group rebalancing.
type Sequential struct {
	shuffle bool
}

// SequentialOption configures a Sequential strategy.
type SequentialOption func(*Sequential)

// NewSequential creates the default grouping strategy.
//
// Parameters:
//   - opts: Optional configuration (WithShuffle)
//
// Returns:
//   - *Sequential: Initialized strategy
//
// Example:
//
//	seq := strategy.NewSequential()
//	plan, err := seq.Plan(30, 4, rng.New(7))
func NewSequential(opts ...SequentialOption) *Sequential {
	s := &Sequential{shuffle: true}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithShuffle enables or disables the shuffle step (default: enabled).
//
// With shuffling disabled records are bucketed in source order; rebalancing
// still draws from the random source.
//
// Parameters:
//   - enabled: Whether to shuffle before bucketing
//
// Returns:
//   - SequentialOption: Configuration option
func WithShuffle(enabled bool) SequentialOption {
	return func(s *Sequential) {
		s.shuffle = enabled
	}
}

// Plan computes the grouping of n records into groups of size.
//
// The group size is validated before any random draw.
//
// Parameters:
//   - n: Number of records
//   - size: Target group size, 1 <= size <= n
//   - rnd: Random source for shuffling and redistribution
//
// Returns:
//   - *Plan: Index-level grouping
//   - error: *types.InvalidGroupSizeError for an out-of-range size, ErrNilRandomSource
func (s *Sequential) Plan(n, size int, rnd types.RandomSource) (*Plan, error) {
	if err := types.ValidateGroupSize(size, n); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, ErrNilRandomSource
	}

	order := Identity(n)
	if s.shuffle {
		order = Shuffle(n, rnd)
	}

	groups := Bucket(n, size)
	last, lastSize := trailingGroup(groups)
	plan := &Plan{
		Order:     order,
		Groups:    groups,
		Buckets:   GroupCount(n, size),
		LastGroup: last,
		LastSize:  lastSize,
		MinViable: MinViable(size),
	}
	moved := Rebalance(groups, size, rnd)
	if len(moved) > 0 {
		plan.Redistributed = true
		plan.Moved = make(map[int]int, len(moved))
		for _, pos := range moved {
			plan.Moved[order[pos]] = groups[pos]
		}
	}

	return plan, nil
}
