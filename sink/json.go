package sink

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// FormatJSON names the JSON sink.
const FormatJSON = "json"

var jsonAPI = jsoniter.Config{
	EscapeHTML:    true,
	IndentionStep: 2,
}.Froze()

// JSON writes a partition as an array of objects, one per record.
//
// Keys follow column order. The group column is a number; every other value
// is a string.
type JSON struct {
	w io.Writer
}

var _ types.RecordSink = (*JSON)(nil)

// NewJSON creates a JSON sink writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Format returns the format name.
func (j *JSON) Format() string {
	return FormatJSON
}

// WritePartition streams the records to the underlying writer.
func (j *JSON) WritePartition(ctx context.Context, p *types.Partition) error {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	columns := p.Columns()
	groupIdx := p.GroupColumnIndex()

	stream := jsoniter.NewStream(jsonAPI, j.w, 4096)
	stream.WriteArrayStart()
	for i, row := range p.Rows() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectStart()
		for k, name := range columns {
			if k > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(name)
			if k == groupIdx {
				stream.WriteInt(p.Assignments[i].Group)
			} else {
				stream.WriteString(row[k])
			}
		}
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return unwritable(FormatJSON, stream.Error)
	}
	if err := stream.Flush(); err != nil {
		return unwritable(FormatJSON, err)
	}

	return nil
}
