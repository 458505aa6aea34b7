package types

import (
	"slices"
	"strconv"
)

// DefaultGroupColumn is the column name used for the group id when none is configured.
const DefaultGroupColumn = "GROUP"

// Assignment pairs a record with the group it was placed in.
type Assignment struct {
	// Index is the record's position in the RecordSet it was read from.
	Index int `json:"index"`

	// Record is the unmodified input record.
	Record Record `json:"record"`

	// Group is the group id (>= 1).
	Group int `json:"group"`
}

// Partition is the complete record-to-group mapping produced by one grouping run.
//
// Assignments are ordered by ascending group id; within a group the shuffled
// order is preserved. Group ids come straight from sequential bucketing and are
// never renumbered: a trailing group dissolved by redistribution is simply
// absent, and the remaining ids run contiguously from 1.
type Partition struct {
	// ID identifies the grouping run (for logs and exported metadata).
	ID string `json:"id"`

	// Header holds the source column names.
	Header []string `json:"header"`

	// GroupColumn names the column carrying the group id in tabular output.
	GroupColumn string `json:"groupColumn"`

	// GroupSize is the requested group size.
	GroupSize int `json:"groupSize"`

	// Seed is the seed the random source was built from. Only meaningful when Seeded is true.
	Seed uint64 `json:"seed"`

	// Seeded reports whether the run used a seed-derived random source.
	Seeded bool `json:"seeded"`

	// Redistributed reports whether an undersized trailing group was dissolved.
	Redistributed bool `json:"redistributed"`

	// Assignments holds one entry per input record.
	Assignments []Assignment `json:"assignments"`
}

// Len returns the number of assigned records.
func (p *Partition) Len() int {
	return len(p.Assignments)
}

// GroupIDs returns the distinct group ids that have at least one member, ascending.
func (p *Partition) GroupIDs() []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0)
	for _, a := range p.Assignments {
		if _, ok := seen[a.Group]; ok {
			continue
		}
		seen[a.Group] = struct{}{}
		ids = append(ids, a.Group)
	}
	slices.Sort(ids)

	return ids
}

// GroupCount returns the number of populated groups.
func (p *Partition) GroupCount() int {
	return len(p.GroupIDs())
}

// Members returns the assignments of a single group in partition order.
//
// Parameters:
//   - group: Group id to look up
//
// Returns:
//   - []Assignment: Members of the group (empty if the group does not exist)
func (p *Partition) Members(group int) []Assignment {
	members := make([]Assignment, 0)
	for _, a := range p.Assignments {
		if a.Group == group {
			members = append(members, a)
		}
	}

	return members
}

// Sizes returns the member count per populated group.
func (p *Partition) Sizes() map[int]int {
	sizes := make(map[int]int)
	for _, a := range p.Assignments {
		sizes[a.Group]++
	}

	return sizes
}

// Columns returns the column names of the tabular view.
//
// The group column is appended to the source header. If the header already
// contains a column with that name, it is kept in place and overwritten in
// Rows. Columns beyond the header (records wider than it, or no header at
// all) are named "Column N" after their 1-based position.
func (p *Partition) Columns() []string {
	header := slices.Clone(p.Header)
	for i := len(header); i < p.width(); i++ {
		header = append(header, "Column "+strconv.Itoa(i+1))
	}

	name := p.groupColumn()
	if slices.Contains(p.Header, name) {
		return header
	}

	return append(header, name)
}

// GroupColumnIndex returns the index of the group column within Columns and Rows.
func (p *Partition) GroupColumnIndex() int {
	if idx := slices.Index(p.Header, p.groupColumn()); idx >= 0 {
		return idx
	}

	return p.width()
}

// Rows returns the tabular view: every record's fields with its group id in
// the group column, in partition order.
//
// Every row has exactly len(Columns()) cells; short records are padded with
// empty strings and no source field is dropped.
func (p *Partition) Rows() [][]string {
	idx := p.GroupColumnIndex()
	cells := max(p.width(), idx+1)

	rows := make([][]string, len(p.Assignments))
	for i, a := range p.Assignments {
		row := make([]string, cells)
		copy(row, a.Record.Fields)
		row[idx] = strconv.Itoa(a.Group)
		rows[i] = row
	}

	return rows
}

func (p *Partition) groupColumn() string {
	if p.GroupColumn == "" {
		return DefaultGroupColumn
	}

	return p.GroupColumn
}

// width is the number of source columns: the header width or the widest
// record, whichever is larger.
func (p *Partition) width() int {
	width := len(p.Header)
	for _, a := range p.Assignments {
		width = max(width, len(a.Record.Fields))
	}

	return width
}
