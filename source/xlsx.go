package source

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatXLSX is the format name reported by XLSX sources.
const FormatXLSX = "xlsx"

// XLSX reads records from an Excel workbook.
//
// The first row of the sheet is the header. Short rows are padded to the
// header width and blank rows are skipped.
type XLSX struct {
	path  string
	r     io.Reader
	sheet string
}

var _ types.RecordSource = (*XLSX)(nil)

// XLSXOption configures an XLSX source.
type XLSXOption func(*XLSX)

// WithSheet reads the named sheet instead of the first one.
func WithSheet(name string) XLSXOption {
	return func(x *XLSX) {
		x.sheet = name
	}
}

// NewXLSX creates an XLSX source reading the workbook from r.
func NewXLSX(r io.Reader, opts ...XLSXOption) *XLSX {
	x := &XLSX{r: r}
	for _, opt := range opts {
		opt(x)
	}

	return x
}

// NewXLSXFile creates an XLSX source that opens path on every read.
func NewXLSXFile(path string, opts ...XLSXOption) *XLSX {
	x := &XLSX{path: path}
	for _, opt := range opts {
		opt(x)
	}

	return x
}

// Format returns "xlsx".
func (x *XLSX) Format() string {
	return FormatXLSX
}

// ReadRecords loads the sheet's rows.
//
// Returns:
//   - types.RecordSet: Header and data rows
//   - error: ErrSourceUnreadable if the workbook cannot be opened or read,
//     ErrNoRecords if the sheet has no data rows
func (x *XLSX) ReadRecords(ctx context.Context) (types.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return types.RecordSet{}, err
	}

	f, name, err := x.open()
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
	}
	defer f.Close()

	sheet := x.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return types.RecordSet{}, fmt.Errorf("%s: no sheets: %w", name, types.ErrNoRecords)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("%w: %s: sheet %q: %w", types.ErrSourceUnreadable, name, sheet, err)
	}

	rows = slices.DeleteFunc(rows, blankRow)
	if len(rows) == 0 {
		return types.RecordSet{}, fmt.Errorf("%s: %w", name, types.ErrNoRecords)
	}

	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) > width {
			return types.RecordSet{}, fmt.Errorf("%w: %s: row %d has %d cells, header has %d",
				types.ErrSourceUnreadable, name, i+2, len(row), width)
		}
		if len(row) < width {
			rows[i+1] = append(row, make([]string, width-len(row))...)
		}
	}

	return buildRecordSet(name, rows)
}

func (x *XLSX) open() (*excelize.File, string, error) {
	if x.path != "" {
		f, err := excelize.OpenFile(x.path)
		return f, x.path, err
	}
	if x.r == nil {
		return nil, "", fmt.Errorf("no input")
	}
	f, err := excelize.OpenReader(x.r)

	return f, "stream", err
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
