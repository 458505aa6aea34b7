package strategy

import "github.com/sanodmendis/ShuffleRooster/types"

// Shuffle returns a uniformly random permutation of 0..n-1.
//
// Uses the Fisher-Yates algorithm, drawing IntN(i+1) for i = n-1 down to 1,
// so every permutation is equally likely given a uniform source.
//
// Parameters:
//   - n: Number of indices
//   - rnd: Random source
//
// Returns:
//   - []int: Permuted indices (empty for n <= 0)
func Shuffle(n int, rnd types.RandomSource) []int {
	order := Identity(n)
	for i := len(order) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return order
}

// Identity returns the indices 0..n-1 in order.
func Identity(n int) []int {
	order := make([]int, max(n, 0))
	for i := range order {
		order[i] = i
	}

	return order
}
