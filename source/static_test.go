package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanodmendis/ShuffleRooster/types"
)

func TestStatic_ReadRecords(t *testing.T) {
	t.Run("returns all records", func(t *testing.T) {
		rs := types.NewRecordSet([]string{"Name", "Email"}, [][]string{
			{"Ada", "ada@example.com"},
			{"Linus", "linus@example.com"},
			{"Grace", "grace@example.com"},
		})
		src := NewStatic(rs)

		result, err := src.ReadRecords(context.Background())

		require.NoError(t, err)
		require.Equal(t, 3, result.Len())
		require.Equal(t, rs, result)
	})

	t.Run("returns empty set when no records", func(t *testing.T) {
		src := NewStatic(types.RecordSet{})

		result, err := src.ReadRecords(context.Background())

		require.NoError(t, err)
		require.Zero(t, result.Len())
	})

	t.Run("does not share storage with callers", func(t *testing.T) {
		rs := types.NewRecordSet([]string{"Name"}, [][]string{{"Ada"}})
		src := NewStatic(rs)

		rs.Records[0].Fields[0] = "changed before read"
		result, err := src.ReadRecords(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Ada", result.Records[0].Fields[0])

		result.Records[0].Fields[0] = "changed after read"
		result2, err := src.ReadRecords(context.Background())
		require.NoError(t, err)
		require.Equal(t, "Ada", result2.Records[0].Fields[0])
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewStatic(types.RecordSet{}).ReadRecords(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic(types.NewRecordSet([]string{"Name"}, [][]string{{"Ada"}}))

	src.Update(types.NewRecordSet([]string{"Name"}, [][]string{{"Linus"}, {"Grace"}}))

	result, err := src.ReadRecords(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, result.Len())
	require.Equal(t, []string{"Linus"}, result.Records[0].Fields)
	require.Equal(t, "static", src.Format())
}
