package inventory

import "bidscan/internal/dataset"

// Cell is the tagged presence value for one subject in one row. The zero
// value means explicitly absent; a present cell carries the relative path of
// the first file that produced it.
type Cell struct {
	Present bool
	Path    string
}

// Row is one shorthand label across all subjects.
type Row struct {
	Label    string
	Datatype string
	cells    map[string]Cell
}

// Cell returns the tagged value for the given subject identifier.
func (r *Row) Cell(subject string) Cell {
	return r.cells[subject]
}

// Table is the aggregated inventory. The subject column set is fixed at
// construction; rows appear in first-seen order.
type Table struct {
	subjects []string
	known    map[string]bool
	rows     []*Row
	index    map[string]*Row
}

// NewTable creates a table with the given resolved subject column order.
func NewTable(subjects []string) *Table {
	known := make(map[string]bool, len(subjects))
	for _, subject := range subjects {
		known[subject] = true
	}
	return &Table{
		subjects: append([]string(nil), subjects...),
		known:    known,
		index:    make(map[string]*Row),
	}
}

// Subjects returns the column order.
func (t *Table) Subjects() []string {
	return t.subjects
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []*Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns the TSV header: label, datatype, then one sub-<id> column
// per subject in resolved order.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.subjects)+2)
	header = append(header, "label", "datatype")
	for _, subject := range t.subjects {
		header = append(header, dataset.SubjectPrefix+subject)
	}
	return header
}

// MarkPresent records that subject has a file for the given label, creating
// the row on first sight. The first file recorded for a subject and label
// wins; later sightings (a sidecar sharing the label) do not replace it.
// Subjects outside the fixed column set are ignored.
func (t *Table) MarkPresent(label, datatype, subject, relpath string) {
	if !t.known[subject] {
		return
	}
	row, ok := t.index[label]
	if !ok {
		row = &Row{Label: label, Datatype: datatype, cells: make(map[string]Cell, len(t.subjects))}
		t.rows = append(t.rows, row)
		t.index[label] = row
	}
	if existing := row.cells[subject]; existing.Present {
		return
	}
	row.cells[subject] = Cell{Present: true, Path: relpath}
}
