package sink

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// Factory builds a sink that writes to w.
type Factory func(w io.Writer) types.RecordSink

var registry = xsync.NewMap[string, Factory]()

func init() {
	Register(FormatCSV, func(w io.Writer) types.RecordSink { return NewCSV(w) })
	Register(FormatXLSX, func(w io.Writer) types.RecordSink { return NewXLSX(w) })
	Register(FormatPDF, func(w io.Writer) types.RecordSink { return NewPDF(w) })
	Register(FormatJSON, func(w io.Writer) types.RecordSink { return NewJSON(w) })
	Register(FormatTable, func(w io.Writer) types.RecordSink { return NewTable(w) })
}

// Register adds or replaces the factory for a format name.
//
// Format names are case-insensitive. Registering is safe for concurrent use.
//
// Example:
//
//	sink.Register("pdf", func(w io.Writer) types.RecordSink {
//	    return sink.NewPDF(w, sink.WithTitle("Lab Partners"))
//	})
func Register(format string, f Factory) {
	registry.Store(normalize(format), f)
}

// ForFormat builds a sink for format writing to w.
//
// Returns:
//   - types.RecordSink: Sink for the format
//   - error: ErrUnsupportedFormat if no factory is registered
func ForFormat(format string, w io.Writer) (types.RecordSink, error) {
	f, ok := registry.Load(normalize(format))
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	return f(w), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, registry.Size())
	registry.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	return names
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}
