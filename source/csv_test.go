package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanodmendis/ShuffleRooster/types"
)

func TestCSV_ReadRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("header and rows", func(t *testing.T) {
		src := NewCSV(strings.NewReader("Name,Email\nAda,ada@example.com\nLinus,linus@example.com\n"))

		rs, err := src.ReadRecords(ctx)

		require.NoError(t, err)
		require.Equal(t, []string{"Name", "Email"}, rs.Header)
		require.Equal(t, 2, rs.Len())
		require.Equal(t, []string{"Linus", "linus@example.com"}, rs.Records[1].Fields)
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		src := NewCSV(strings.NewReader("\ufeffName\nAda\n"))

		rs, err := src.ReadRecords(ctx)

		require.NoError(t, err)
		require.Equal(t, []string{"Name"}, rs.Header)
	})

	t.Run("quoted fields and blank lines", func(t *testing.T) {
		src := NewCSV(strings.NewReader("Name,Note\n\"Lovelace, Ada\",\"said \"\"hi\"\"\"\n\nGrace,\n"))

		rs, err := src.ReadRecords(ctx)

		require.NoError(t, err)
		require.Equal(t, 2, rs.Len())
		require.Equal(t, []string{"Lovelace, Ada", `said "hi"`}, rs.Records[0].Fields)
		require.Equal(t, []string{"Grace", ""}, rs.Records[1].Fields)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		src := NewCSV(strings.NewReader("Name;Class\nAda;A\n"), WithComma(';'))

		rs, err := src.ReadRecords(ctx)

		require.NoError(t, err)
		require.Equal(t, []string{"Ada", "A"}, rs.Records[0].Fields)
	})

	t.Run("ragged row", func(t *testing.T) {
		src := NewCSV(strings.NewReader("Name,Email\nAda\n"))

		_, err := src.ReadRecords(ctx)

		require.ErrorIs(t, err, types.ErrSourceUnreadable)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := NewCSV(strings.NewReader("Name,Email\n")).ReadRecords(ctx)

		require.ErrorIs(t, err, types.ErrNoRecords)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewCSV(strings.NewReader("")).ReadRecords(ctx)

		require.ErrorIs(t, err, types.ErrNoRecords)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := NewCSV(nil).ReadRecords(ctx)

		require.ErrorIs(t, err, types.ErrSourceUnreadable)
	})
}

func TestCSV_File(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("reads file on every call", func(t *testing.T) {
		path := filepath.Join(dir, "students.csv")
		require.NoError(t, os.WriteFile(path, []byte("Name\nAda\nLinus\n"), 0o600))
		src := NewCSVFile(path)

		first, err := src.ReadRecords(ctx)
		require.NoError(t, err)
		second, err := src.ReadRecords(ctx)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, FormatCSV, src.Format())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCSVFile(filepath.Join(dir, "missing.csv")).ReadRecords(ctx)

		require.ErrorIs(t, err, types.ErrSourceUnreadable)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
