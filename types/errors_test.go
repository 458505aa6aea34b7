package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrInvalidGroupSize, ErrInvalidGroupSize))
		require.False(t, errors.Is(ErrInvalidGroupSize, ErrNoRecords))

		wrapped := fmt.Errorf("reading roster: %w", ErrSourceUnreadable)
		require.True(t, errors.Is(wrapped, ErrSourceUnreadable))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidGroupSize,
			ErrNoRecords,
			ErrNoPartition,
			ErrSourceUnreadable,
			ErrDestinationUnwritable,
			ErrUnsupportedFormat,
			ErrInvalidConfig,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestInvalidGroupSizeError(t *testing.T) {
	t.Run("matches sentinel", func(t *testing.T) {
		err := NewInvalidGroupSizeError(0, 5)

		require.ErrorIs(t, err, ErrInvalidGroupSize)
		require.NotErrorIs(t, err, ErrNoRecords)
		require.Equal(t, "invalid group size 0: must be between 1 and 5", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("create groups: %w", NewInvalidGroupSizeError(6, 5))

		var sizeErr *InvalidGroupSizeError
		require.ErrorAs(t, err, &sizeErr)
		require.Equal(t, 6, sizeErr.Size)
		require.Equal(t, 5, sizeErr.Records)
		require.ErrorIs(t, err, ErrInvalidGroupSize)
	})
}

func TestValidateGroupSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		records int
		wantErr bool
	}{
		{"zero", 0, 5, true},
		{"negative", -1, 5, true},
		{"one more than records", 6, 5, true},
		{"no records", 1, 0, true},
		{"one", 1, 5, false},
		{"equal to records", 5, 5, false},
		{"middle", 3, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGroupSize(tt.size, tt.records)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidGroupSize)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
