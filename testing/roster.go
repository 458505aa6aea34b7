package testing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// RosterHeader is the header of rosters built by Roster.
var RosterHeader = []string{"Name", "Email"}

// Roster builds a roster of n students named "Student 01", "Student 02", ...
//
// Parameters:
//   - n: Number of students
//
// Returns:
//   - types.RecordSet: Roster with RosterHeader columns
func Roster(n int) types.RecordSet {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{
			fmt.Sprintf("Student %02d", i+1),
			fmt.Sprintf("student%02d@example.com", i+1),
		}
	}

	return types.NewRecordSet(RosterHeader, rows)
}

// WriteCSV writes rs as a CSV file in a temp directory owned by tb.
//
// Returns:
//   - string: Path of the written file
func WriteCSV(tb testing.TB, rs types.RecordSet) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "roster.csv")
	f, err := os.Create(path)
	require.NoError(tb, err)
	defer f.Close()

	w := csv.NewWriter(f)
	if len(rs.Header) > 0 {
		require.NoError(tb, w.Write(rs.Header))
	}
	for _, r := range rs.Records {
		require.NoError(tb, w.Write(r.Fields))
	}
	w.Flush()
	require.NoError(tb, w.Error())

	return path
}

// WriteXLSX writes rs as the first sheet of a workbook in a temp directory owned by tb.
//
// Returns:
//   - string: Path of the written file
func WriteXLSX(tb testing.TB, rs types.RecordSet) string {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	row := 1
	if len(rs.Header) > 0 {
		writeRow(tb, f, sheet, row, rs.Header)
		row++
	}
	for _, r := range rs.Records {
		writeRow(tb, f, sheet, row, r.Fields)
		row++
	}

	path := filepath.Join(tb.TempDir(), "roster.xlsx")
	require.NoError(tb, f.SaveAs(path))

	return path
}

func writeRow(tb testing.TB, f *excelize.File, sheet string, row int, cells []string) {
	tb.Helper()

	cell, err := excelize.CoordinatesToCellName(1, row)
	require.NoError(tb, err)

	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	require.NoError(tb, f.SetSheetRow(sheet, cell, &values))
}
