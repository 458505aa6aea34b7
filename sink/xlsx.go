package sink

import (
	"context"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatXLSX names the Excel sink.
const FormatXLSX = "xlsx"

// SheetName is the worksheet the XLSX sink writes to.
const SheetName = "Groups"

// XLSX writes a partition as an Excel workbook.
//
// The header row is bold and the group column holds numbers, so the sheet can
// be sorted and filtered in a spreadsheet.
type XLSX struct {
	w io.Writer
}

var _ types.RecordSink = (*XLSX)(nil)

// NewXLSX creates an XLSX sink writing to w.
func NewXLSX(w io.Writer) *XLSX {
	return &XLSX{w: w}
}

// Format returns the format name.
func (x *XLSX) Format() string {
	return FormatXLSX
}

// WritePartition builds the workbook in memory and writes it to the underlying writer.
func (x *XLSX) WritePartition(ctx context.Context, p *types.Partition) error {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return unwritable(FormatXLSX, err)
	}

	columns := p.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return unwritable(FormatXLSX, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return unwritable(FormatXLSX, err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return unwritable(FormatXLSX, err)
	}

	groupIdx := p.GroupColumnIndex()
	for i, row := range p.Rows() {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		values[groupIdx] = p.Assignments[i].Group

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return unwritable(FormatXLSX, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return unwritable(FormatXLSX, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return unwritable(FormatXLSX, err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Student Groups",
		Description: "group size " + strconv.Itoa(p.GroupSize),
		Identifier:  p.ID,
	}); err != nil {
		return unwritable(FormatXLSX, err)
	}

	if _, err := f.WriteTo(x.w); err != nil {
		return unwritable(FormatXLSX, err)
	}

	return nil
}
