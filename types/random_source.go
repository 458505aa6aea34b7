package types

// RandomSource supplies the randomness used for shuffling and redistribution.
//
// Implementations must return a uniformly distributed integer in [0, n) for
// any n > 0. They are not required to be safe for concurrent use; the Grouper
// builds a fresh source per run unless one is injected explicitly.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
}
