package strategy

// Bucket assigns sequential group ids to n positions.
//
// Position i joins group (i / size) + 1, giving ceil(n / size) groups of
// exactly size members except possibly the last.
//
// Parameters:
//   - n: Number of positions
//   - size: Group size (must be >= 1)
//
// Returns:
//   - []int: Group id per position
func Bucket(n, size int) []int {
	groups := make([]int, n)
	for i := range groups {
		groups[i] = i/size + 1
	}

	return groups
}

// GroupCount returns the number of groups Bucket produces: ceil(n / size).
func GroupCount(n, size int) int {
	return (n + size - 1) / size
}

// MinViable returns the smallest size a trailing group may have without
// being dissolved: more than half of the group size, i.e. size/2 + 1.
//
// For example, 4 → 3, 5 → 3, 1 → 1.
func MinViable(size int) int {
	return size/2 + 1
}
