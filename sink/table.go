package sink

import (
	"context"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatTable names the console table sink.
const FormatTable = "table"

// Table writes a partition as aligned columns for terminal display.
type Table struct {
	w io.Writer
}

var _ types.RecordSink = (*Table)(nil)

// NewTable creates a table sink writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Format returns the format name.
func (t *Table) Format() string {
	return FormatTable
}

// WritePartition prints the header, a rule, and one line per record.
func (t *Table) WritePartition(ctx context.Context, p *types.Partition) error {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)

	columns := p.Columns()
	rule := make([]string, len(columns))
	for i, c := range columns {
		rule[i] = strings.Repeat("-", max(len(c), 1))
	}

	lines := [][]string{columns, rule}
	lines = append(lines, p.Rows()...)
	for _, line := range lines {
		if _, err := io.WriteString(tw, strings.Join(clean(line), "\t")+"\n"); err != nil {
			return unwritable(FormatTable, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return unwritable(FormatTable, err)
	}

	return nil
}

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

// clean replaces characters that would break column alignment.
func clean(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = cellReplacer.Replace(c)
	}

	return out
}
