// Package source provides built-in record source implementations.
//
// Record sources load the roster that gets grouped. The package includes:
//
//   - Static: Fixed in-memory record set
//   - CSV: Comma-separated file or stream, first row is the header
//   - XLSX: First worksheet of an Excel workbook, first row is the header
//
// Open picks CSV or XLSX by file extension. Custom sources can be
// implemented by satisfying the types.RecordSource interface.
package source
