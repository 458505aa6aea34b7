package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
	"time"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// seedMix decorrelates the second PCG state word from the first.
const seedMix = 0x9e3779b97f4a7c15

// PCG is a seeded RandomSource backed by math/rand/v2's PCG generator.
//
// A PCG is not safe for concurrent use.
type PCG struct {
	seed uint64
	rng  *rand.Rand
}

var _ types.RandomSource = (*PCG)(nil)

// New creates a reproducible random source from a seed.
//
// Two sources created with the same seed produce the same sequence.
//
// Parameters:
//   - seed: Generator seed
//
// Returns:
//   - *PCG: Seeded random source
//
// Example:
//
//	src := rng.New(42)
//	i := src.IntN(10)
func New(seed uint64) *PCG {
	return &PCG{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^seedMix)), //nolint:gosec // grouping does not need a CSPRNG
	}
}

// NewEntropy creates a random source seeded from crypto/rand.
//
// Falls back to the wall clock if the entropy source fails.
//
// Returns:
//   - *PCG: Randomly seeded source; Seed reports the seed used
func NewEntropy() *PCG {
	return New(EntropySeed())
}

// EntropySeed draws a fresh seed from crypto/rand, falling back to the wall clock.
func EntropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano()) //nolint:gosec // fallback seed only
	}

	return binary.LittleEndian.Uint64(b[:])
}

// Seed returns the seed this source was created with.
func (p *PCG) Seed() uint64 {
	return p.seed
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (p *PCG) IntN(n int) int {
	return p.rng.IntN(n)
}
