package strategy

import "github.com/sanodmendis/ShuffleRooster/types"

// Rebalance dissolves an undersized trailing group in place.
//
// Let last be the highest id in groups and lastSize its member count. When
// last > 1 and lastSize < MinViable(size), every member of last is moved to
// an independently, uniformly chosen group in 1..last-1. Targets are not
// balanced; the emptied id is not reused.
//
// Parameters:
//   - groups: Group id per position (modified in place)
//   - size: Group size the ids were bucketed with
//   - rnd: Random source for target selection
//
// Returns:
//   - []int: Positions whose group changed, in ascending order (nil if nothing moved)
func Rebalance(groups []int, size int, rnd types.RandomSource) []int {
	last, lastSize := trailingGroup(groups)
	if last <= 1 || lastSize >= MinViable(size) {
		return nil
	}

	moved := make([]int, 0, lastSize)
	for pos, g := range groups {
		if g != last {
			continue
		}
		groups[pos] = rnd.IntN(last-1) + 1
		moved = append(moved, pos)
	}

	return moved
}

// trailingGroup returns the highest group id and the number of positions holding it.
func trailingGroup(groups []int) (last, size int) {
	for _, g := range groups {
		switch {
		case g > last:
			last, size = g, 1
		case g == last:
			size++
		}
	}

	return last, size
}
