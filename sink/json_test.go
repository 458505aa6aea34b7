package sink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/sanodmendis/ShuffleRooster/types"
)

func TestJSON_WritePartition(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	require.NoError(t, NewJSON(&buf).WritePartition(ctx, samplePartition()))

	var got []map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	require.Equal(t, "Grace", got[0]["Name"])
	require.Equal(t, "linus@example.com", got[2]["Email"])
	require.InDelta(t, 2, got[2]["GROUP"], 0)

	t.Run("keys follow column order", func(t *testing.T) {
		out := buf.String()
		first := out[:strings.Index(out, "}")]
		require.Less(t, strings.Index(first, `"Name"`), strings.Index(first, `"Email"`))
		require.Less(t, strings.Index(first, `"Email"`), strings.Index(first, `"GROUP"`))
	})

	t.Run("empty partition", func(t *testing.T) {
		var empty bytes.Buffer
		require.NoError(t, NewJSON(&empty).WritePartition(ctx, &types.Partition{}))

		var rows []map[string]any
		require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(empty.Bytes(), &rows))
		require.NotNil(t, rows)
		require.Empty(t, rows)
	})

	t.Run("ragged records", func(t *testing.T) {
		rec := func(fields ...string) types.Record { return types.Record{Fields: fields} }
		tests := []struct {
			name   string
			header []string
			record types.Record
			want   map[string]any
		}{
			{
				name:   "short record with group column in header",
				header: []string{"Name", "GROUP", "Email"},
				record: rec("Ada"),
				want:   map[string]any{"Name": "Ada", "GROUP": float64(1), "Email": ""},
			},
			{
				name:   "record wider than header",
				header: []string{"Name"},
				record: rec("Ada", "ada@example.com"),
				want:   map[string]any{"Name": "Ada", "Column 2": "ada@example.com", "GROUP": float64(1)},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := &types.Partition{
					Header:      tt.header,
					Assignments: []types.Assignment{{Record: tt.record, Group: 1}},
				}
				var out bytes.Buffer
				require.NoError(t, NewJSON(&out).WritePartition(ctx, p))

				var rows []map[string]any
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(out.Bytes(), &rows))
				require.Equal(t, []map[string]any{tt.want}, rows)
			})
		}
	})

	t.Run("nil partition", func(t *testing.T) {
		require.ErrorIs(t, NewJSON(&bytes.Buffer{}).WritePartition(ctx, nil), types.ErrNoPartition)
	})

	t.Run("writer failure", func(t *testing.T) {
		err := NewJSON(failingWriter{}).WritePartition(ctx, samplePartition())
		require.ErrorIs(t, err, types.ErrDestinationUnwritable)
	})
}
