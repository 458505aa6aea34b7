// Package sink writes grouped partitions to files and terminals.
//
// Every sink emits all source columns followed by the group column. The
// package includes:
//
//   - CSV: comma-separated text
//   - XLSX: Excel workbook with a "Groups" sheet
//   - PDF: printable table on a letter page
//   - JSON: array of objects keyed by column name
//   - Table: aligned text for console display
//
// Sinks are registered by format name; ForFormat builds one for a writer and
// Create builds a file-backed sink for a path.
package sink
