package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatCSV is the format name reported by CSV sources.
const FormatCSV = "csv"

const utf8BOM = "\ufeff"

// CSV reads records from comma-separated text.
//
// The first row is the header. Every data row must have the header's width.
type CSV struct {
	path  string
	r     io.Reader
	comma rune
}

var _ types.RecordSource = (*CSV)(nil)

// CSVOption configures a CSV source.
type CSVOption func(*CSV)

// WithComma sets the field delimiter (default ',').
func WithComma(comma rune) CSVOption {
	return func(c *CSV) {
		c.comma = comma
	}
}

// NewCSV creates a CSV source reading from r. The reader is consumed on the first read.
func NewCSV(r io.Reader, opts ...CSVOption) *CSV {
	c := &CSV{r: r, comma: ','}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewCSVFile creates a CSV source that opens path on every read.
func NewCSVFile(path string, opts ...CSVOption) *CSV {
	c := &CSV{path: path, comma: ','}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Format returns "csv".
func (c *CSV) Format() string {
	return FormatCSV
}

// ReadRecords parses the CSV input.
//
// Returns:
//   - types.RecordSet: Header and data rows
//   - error: ErrSourceUnreadable on I/O or parse failure, ErrNoRecords if there are no data rows
func (c *CSV) ReadRecords(ctx context.Context) (types.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return types.RecordSet{}, err
	}

	r := c.r
	name := "stream"
	if c.path != "" {
		f, err := os.Open(c.path)
		if err != nil {
			return types.RecordSet{}, fmt.Errorf("%w: %w", types.ErrSourceUnreadable, err)
		}
		defer f.Close()
		r, name = f, c.path
	}
	if r == nil {
		return types.RecordSet{}, fmt.Errorf("%w: no input", types.ErrSourceUnreadable)
	}

	reader := csv.NewReader(r)
	reader.Comma = c.comma
	reader.FieldsPerRecord = 0

	rows, err := reader.ReadAll()
	if err != nil {
		return types.RecordSet{}, fmt.Errorf("%w: %s: %w", types.ErrSourceUnreadable, name, err)
	}

	return buildRecordSet(name, rows)
}

func buildRecordSet(name string, rows [][]string) (types.RecordSet, error) {
	if len(rows) == 0 {
		return types.RecordSet{}, fmt.Errorf("%s: %w", name, types.ErrNoRecords)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if len(rows) == 1 {
		return types.RecordSet{}, fmt.Errorf("%s: header only: %w", name, types.ErrNoRecords)
	}

	return types.NewRecordSet(header, rows[1:]), nil
}
