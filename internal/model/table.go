package model

import "strconv"

// YearColumnName is the header restored onto the stamped year column
// during formatting. The stamp overwrites the promoted header cell
// with a year value, so the name is carried by position instead.
const YearColumnName = "Year"

// RawTable is one undecoded API response: rows of strings exactly as
// returned, with row 0 holding the header labels. Multi-year requests
// concatenate several responses into one table, so rows past the first
// batch may themselves be header rows.
type RawTable struct {
	// Rows holds the header row followed by data rows.
	Rows [][]string

	// YearCol is the index of the stamped year column, or -1 when the
	// table carries no stamp.
	YearCol int
}

// NewRawTable wraps API response rows in an unstamped table.
func NewRawTable(rows [][]string) *RawTable {
	return &RawTable{Rows: rows, YearCol: -1}
}

// Empty reports whether the table has no rows at all.
func (t *RawTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Width returns the header row's length, or zero for an empty table.
func (t *RawTable) Width() int {
	if t.Empty() {
		return 0
	}
	return len(t.Rows[0])
}

// StampYear appends the year to every row, header included, and
// returns a new table remembering the stamped column. Stamping the
// header row too keeps embedded header rows from later batches the
// same width as data rows; the formatter erases them by coercion.
func (t *RawTable) StampYear(year int) *RawTable {
	stamp := strconv.Itoa(year)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		stamped := make([]string, 0, len(row)+1)
		stamped = append(stamped, row...)
		stamped = append(stamped, stamp)
		rows[i] = stamped
	}
	return &RawTable{Rows: rows, YearCol: t.Width()}
}

// Concat appends another table's rows, preserving the receiver's
// stamp bookkeeping. The other table's header row is kept as data;
// formatting turns it into a dropped missing row.
func (t *RawTable) Concat(other *RawTable) *RawTable {
	if other.Empty() {
		return t
	}
	rows := make([][]string, 0, len(t.Rows)+len(other.Rows))
	rows = append(rows, t.Rows...)
	rows = append(rows, other.Rows...)
	return &RawTable{Rows: rows, YearCol: t.YearCol}
}

// Header returns row 0, or nil for an empty table.
func (t *RawTable) Header() []string {
	if t.Empty() {
		return nil
	}
	return t.Rows[0]
}
