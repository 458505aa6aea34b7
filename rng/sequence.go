package rng

import (
	"sync"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Sequence is a scripted RandomSource for tests.
//
// Each call to IntN returns the next scripted value reduced modulo n. The
// script restarts from the beginning once exhausted. An empty script always
// yields 0.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
	calls  []int
}

var _ types.RandomSource = (*Sequence)(nil)

// NewSequence creates a scripted random source.
//
// Parameters:
//   - values: Values to return, in order (negative values are treated as their absolute value)
//
// Returns:
//   - *Sequence: Scripted source
//
// Example:
//
//	// A shuffle of 3 items draws IntN(3) then IntN(2); zeros produce [1 2 0].
//	src := rng.NewSequence(0, 0)
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}

	return v % n
}

// Calls returns the n argument of every IntN call so far.
func (s *Sequence) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([]int, len(s.calls))
	copy(calls, s.calls)

	return calls
}
