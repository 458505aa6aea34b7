package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// DefaultPrefix is the file name prefix used by DefaultFilename when none is given.
const DefaultPrefix = "grouped"

// timestampLayout is filesystem-safe: no colons.
const timestampLayout = "2006-01-02T15-04-05"

// File is a sink that creates a file and writes a partition to it.
type File struct {
	path    string
	format  string
	factory Factory
}

// FileOption configures a File.
type FileOption func(*File)

// WithFactory builds the file's sink with factory instead of the registered
// one, e.g. to set a PDF title for a single file.
func WithFactory(factory Factory) FileOption {
	return func(f *File) {
		f.factory = factory
	}
}

var _ types.RecordSink = (*File)(nil)

// Create returns a sink writing to path.
//
// Parameters:
//   - path: Destination file, created or truncated on write
//   - format: Registered format name; derived from the extension when empty
//   - opts: Optional settings such as WithFactory
//
// Returns:
//   - *File: File-backed sink
//   - error: ErrUnsupportedFormat if the format is unknown
//
// Example:
//
//	out, err := sink.Create("groups.xlsx", "")
//	if err != nil { /* handle */ }
//	err = session.Save(ctx, out)
func Create(path, format string, opts ...FileOption) (*File, error) {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		format = f
	}
	format = normalize(format)
	if _, ok := registry.Load(format); !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, format)
	}

	f := &File{path: path, format: format}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Path returns the destination path.
func (f *File) Path() string {
	return f.path
}

// Format returns the format name.
func (f *File) Format() string {
	return f.format
}

// WritePartition creates the file, writes the partition and closes it.
//
// A partially written file is removed when the write fails.
func (f *File) WritePartition(ctx context.Context, p *types.Partition) (err error) {
	if err := checkPartition(ctx, p); err != nil {
		return err
	}

	out, err := os.Create(f.path)
	if err != nil {
		return unwritable(f.format, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = unwritable(f.format, cerr)
		}
		if err != nil {
			_ = os.Remove(f.path)
		}
	}()

	var s types.RecordSink
	if f.factory != nil {
		s = f.factory(out)
	} else if s, err = ForFormat(f.format, out); err != nil {
		return err
	}

	return s.WritePartition(ctx, p)
}

// FormatFromPath returns the registered format matching the file extension.
//
// Returns:
//   - string: Format name
//   - error: ErrUnsupportedFormat for unknown extensions, including legacy .xls
func FormatFromPath(path string) (string, error) {
	ext := normalize(filepath.Ext(path))
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", types.ErrUnsupportedFormat, path)
	}
	if _, ok := registry.Load(ext); !ok || ext == FormatTable {
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedFormat, ext)
	}

	return ext, nil
}

// DefaultFilename returns prefix_<timestamp>.<format>, e.g. grouped_2024-03-01T09-30-00.xlsx.
func DefaultFilename(prefix, format string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return prefix + "_" + now.Format(timestampLayout) + "." + normalize(format)
}
