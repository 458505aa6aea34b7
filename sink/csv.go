package sink

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatCSV names the CSV sink.
const FormatCSV = "csv"

// CSV writes a partition as comma-separated text with a header row.
type CSV struct {
	w io.Writer
}

var _ types.RecordSink = (*CSV)(nil)

// NewCSV creates a CSV sink writing to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: w}
}

// Format returns the format name.
func (c *CSV) Format() string {
	return FormatCSV
}

// WritePartition writes the header and one row per record.
func (c *CSV) WritePartition(ctx context.Context, p *types.Partition) error {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	cw := csv.NewWriter(c.w)
	if err := cw.Write(p.Columns()); err != nil {
		return unwritable(FormatCSV, err)
	}
	if err := cw.WriteAll(p.Rows()); err != nil {
		return unwritable(FormatCSV, err)
	}

	return nil
}
