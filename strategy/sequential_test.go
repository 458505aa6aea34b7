package strategy

import (
	"slices"
	"testing"

	"github.com/sanodmendis/ShuffleRooster/rng"
	"github.com/sanodmendis/ShuffleRooster/types"
	"github.com/stretchr/testify/require"
)

func groupSizes(groups []int) map[int]int {
	sizes := make(map[int]int)
	for _, g := range groups {
		sizes[g]++
	}

	return sizes
}

func TestSequential_Plan_RejectsInvalidGroupSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
	}{
		{"zero", 5, 0},
		{"negative", 5, -2},
		{"larger than records", 5, 6},
		{"no records", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rng.NewSequence(1, 2, 3)

			plan, err := NewSequential().Plan(tt.n, tt.size, src)

			require.ErrorIs(t, err, types.ErrInvalidGroupSize)
			require.Nil(t, plan)
			require.Empty(t, src.Calls(), "validation happens before any random draw")
		})
	}
}

func TestSequential_Plan_RequiresRandomSource(t *testing.T) {
	_, err := NewSequential().Plan(5, 2, nil)

	require.ErrorIs(t, err, ErrNilRandomSource)
}

func TestSequential_Plan_Properties(t *testing.T) {
	seq := NewSequential()
	for n := 1; n <= 30; n++ {
		for size := 1; size <= n; size++ {
			plan, err := seq.Plan(n, size, rng.New(uint64(n*100+size)))
			require.NoError(t, err)

			// Every record appears exactly once.
			sorted := slices.Clone(plan.Order)
			slices.Sort(sorted)
			require.Equal(t, Identity(n), sorted, "n=%d size=%d", n, size)
			require.Len(t, plan.Groups, n)

			require.Equal(t, (n+size-1)/size, plan.Buckets)
			require.Equal(t, plan.Buckets, plan.LastGroup)
			require.Equal(t, size/2+1, plan.MinViable)

			sizes := groupSizes(plan.Groups)
			if !plan.Redistributed {
				for g := 1; g < plan.LastGroup; g++ {
					require.Equal(t, size, sizes[g], "n=%d size=%d group=%d", n, size, g)
				}
				require.Equal(t, plan.LastSize, sizes[plan.LastGroup])
				require.Empty(t, plan.Moved)

				continue
			}

			require.Greater(t, plan.LastGroup, 1)
			require.Less(t, plan.LastSize, plan.MinViable)
			require.Zero(t, sizes[plan.LastGroup], "dissolved group must be empty")
			require.Len(t, plan.Moved, plan.LastSize)
			for idx, g := range plan.Moved {
				require.GreaterOrEqual(t, g, 1)
				require.Less(t, g, plan.LastGroup)
				require.Contains(t, plan.Order, idx)
			}
		}
	}
}

func TestSequential_Plan_Scenarios(t *testing.T) {
	t.Run("10 records in groups of 4 redistributes the pair", func(t *testing.T) {
		plan, err := NewSequential().Plan(10, 4, rng.New(3))
		require.NoError(t, err)

		require.True(t, plan.Redistributed)
		require.Equal(t, 3, plan.LastGroup)
		require.Equal(t, 2, plan.LastSize)
		require.Equal(t, 3, plan.MinViable)
		require.Len(t, plan.Moved, 2)

		sizes := groupSizes(plan.Groups)
		require.Zero(t, sizes[3])
		require.Equal(t, 10, sizes[1]+sizes[2])
	})

	t.Run("9 records in groups of 3 stay put", func(t *testing.T) {
		plan, err := NewSequential().Plan(9, 3, rng.New(3))
		require.NoError(t, err)

		require.False(t, plan.Redistributed)
		require.Equal(t, map[int]int{1: 3, 2: 3, 3: 3}, groupSizes(plan.Groups))
	})

	t.Run("group size equal to records gives one group", func(t *testing.T) {
		plan, err := NewSequential().Plan(5, 5, rng.New(3))
		require.NoError(t, err)

		require.False(t, plan.Redistributed)
		require.Equal(t, 1, plan.LastGroup)
		require.Equal(t, map[int]int{1: 5}, groupSizes(plan.Groups))
	})

	t.Run("group size one gives singleton groups", func(t *testing.T) {
		plan, err := NewSequential().Plan(5, 1, rng.New(3))
		require.NoError(t, err)

		require.False(t, plan.Redistributed)
		require.Equal(t, 5, plan.LastGroup)
		require.Equal(t, 1, plan.LastSize)
		require.Equal(t, 1, plan.MinViable)
		require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, groupSizes(plan.Groups))
	})

	t.Run("single record", func(t *testing.T) {
		plan, err := NewSequential().Plan(1, 1, rng.New(3))
		require.NoError(t, err)

		require.Equal(t, []int{0}, plan.Order)
		require.Equal(t, []int{1}, plan.Groups)
	})
}

func TestSequential_Plan_Scripted(t *testing.T) {
	src := rng.NewSequence(0)

	plan, err := NewSequential().Plan(4, 3, src)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 0}, plan.Order)
	require.Equal(t, []int{1, 1, 1, 1}, plan.Groups)
	require.True(t, plan.Redistributed)
	require.Equal(t, map[int]int{0: 1}, plan.Moved)
	require.Equal(t, []int{4, 3, 2, 1}, src.Calls())
}

func TestSequential_Plan_WithoutShuffle(t *testing.T) {
	src := rng.NewSequence(0, 1)

	plan, err := NewSequential(WithShuffle(false)).Plan(10, 4, src)
	require.NoError(t, err)

	require.Equal(t, Identity(10), plan.Order)
	require.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 2, 1, 2}, plan.Groups)
	require.Equal(t, map[int]int{8: 1, 9: 2}, plan.Moved)
	require.Equal(t, []int{2, 2}, src.Calls(), "only redistribution draws")
}

func TestSequential_Plan_Deterministic(t *testing.T) {
	seq := NewSequential()

	a, err := seq.Plan(37, 5, rng.New(2024))
	require.NoError(t, err)
	b, err := seq.Plan(37, 5, rng.New(2024))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestPlan_Sorted(t *testing.T) {
	plan := &Plan{Groups: []int{1, 1, 1, 1, 2, 2, 2, 2, 1, 2}}

	require.Equal(t, []int{0, 1, 2, 3, 8, 4, 5, 6, 7, 9}, plan.Sorted())
}
