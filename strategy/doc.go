// Package strategy provides the shuffle-partition-rebalance grouping algorithm.
//
// The algorithm works on record indices only, so it never touches or reorders
// the caller's records:
//
//  1. Shuffle: Fisher-Yates permutation of 0..N-1
//  2. Bucket: shuffled position i joins group (i / G) + 1
//  3. Rebalance: a trailing group smaller than G/2+1 is dissolved, each of its
//     members moving to a uniformly random earlier group
//
// Rebalancing deliberately picks targets independently at random rather than
// filling the smallest group first, so earlier groups can end up uneven.
//
// # Usage
//
//	seq := strategy.NewSequential()
//	plan, err := seq.Plan(len(records), 4, rng.New(42))
//	if err != nil {
//	    return err // wraps types.ErrInvalidGroupSize
//	}
//	for pos, idx := range plan.Order {
//	    fmt.Println(records[idx], plan.Groups[pos])
//	}
package strategy
