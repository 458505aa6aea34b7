package types

import "slices"

// Record is a single row loaded from a RecordSource.
//
// The grouping algorithm treats a record as an indivisible unit and never
// inspects its fields; they are carried through to the sink unchanged.
type Record struct {
	// Fields holds the cell values in source column order.
	Fields []string `json:"fields"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{Fields: slices.Clone(r.Fields)}
}

// RecordSet is an ordered sequence of records plus the column names they were read with.
type RecordSet struct {
	// Header names the columns. It may be empty for sources without a header row.
	Header []string `json:"header"`

	// Records are the data rows in source order.
	Records []Record `json:"records"`
}

// NewRecordSet builds a RecordSet from a header and raw rows.
//
// Parameters:
//   - header: Column names (may be nil)
//   - rows: Raw rows, each becoming one Record
//
// Returns:
//   - RecordSet: Record set owning copies of the given rows
//
// Example:
//
//	rs := types.NewRecordSet([]string{"Name"}, [][]string{{"Ada"}, {"Linus"}})
func NewRecordSet(header []string, rows [][]string) RecordSet {
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{Fields: slices.Clone(row)}
	}

	return RecordSet{Header: slices.Clone(header), Records: records}
}

// Len returns the number of records.
func (rs RecordSet) Len() int {
	return len(rs.Records)
}

// Clone returns a deep copy of the record set.
func (rs RecordSet) Clone() RecordSet {
	records := make([]Record, len(rs.Records))
	for i, r := range rs.Records {
		records[i] = r.Clone()
	}

	return RecordSet{Header: slices.Clone(rs.Header), Records: records}
}
