package rng

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// ParseSeed converts user input into a seed.
//
// Decimal numbers map to themselves. Any other non-empty text is hashed with
// xxh3, so a phrase such as "week 3" reproduces the same groups every time.
//
// Parameters:
//   - s: Seed text (surrounding whitespace is ignored)
//
// Returns:
//   - uint64: Seed value (0 if s is empty)
//   - bool: false if s is empty, meaning no seed was given
func ParseSeed(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, true
	}

	return xxh3.HashString(s), true
}
