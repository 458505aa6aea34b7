package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Open returns a file-backed source chosen by the file extension.
//
// Parameters:
//   - path: Path to a .csv or .xlsx file
//
// Returns:
//   - types.RecordSource: CSV or XLSX source
//   - error: ErrUnsupportedFormat for any other extension, including legacy .xls
//
// Example:
//
//	src, err := source.Open("students.xlsx")
//	if err != nil { /* handle */ }
//	rs, err := src.ReadRecords(ctx)
func Open(path string) (types.RecordSource, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return NewCSVFile(path), nil
	case ".xlsx":
		return NewXLSXFile(path), nil
	default:
		return nil, fmt.Errorf("%w: %q (%s)", types.ErrUnsupportedFormat, ext, path)
	}
}
