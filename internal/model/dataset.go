package model

import "strconv"

// DatasetTag marks formatted results as census microdata for layers
// that dispatch on dataset capability.
const DatasetTag = "census"

// SeriesKind identifies the element type backing a Series.
type SeriesKind int

const (
	KindString SeriesKind = iota
	KindFloat
	KindInt
)

// Series is one named, fixed-type column with a per-row missing mask.
type Series struct {
	name    string
	kind    SeriesKind
	floats  []float64
	ints    []int64
	strings []string
	missing []bool
}

// NewFloatSeries builds a float column. A nil mask means no value is
// missing.
func NewFloatSeries(name string, values []float64, missing []bool) Series {
	return Series{name: name, kind: KindFloat, floats: values, missing: normalizeMask(missing, len(values))}
}

// NewIntSeries builds an integer column. A nil mask means no value is
// missing.
func NewIntSeries(name string, values []int64, missing []bool) Series {
	return Series{name: name, kind: KindInt, ints: values, missing: normalizeMask(missing, len(values))}
}

// NewStringSeries builds a string column. A nil mask means no value is
// missing.
func NewStringSeries(name string, values []string, missing []bool) Series {
	return Series{name: name, kind: KindString, strings: values, missing: normalizeMask(missing, len(values))}
}

func normalizeMask(missing []bool, n int) []bool {
	if missing == nil {
		return make([]bool, n)
	}
	return missing
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// Kind returns the element type of the column.
func (s Series) Kind() SeriesKind { return s.kind }

// Len returns the number of rows.
func (s Series) Len() int {
	switch s.kind {
	case KindFloat:
		return len(s.floats)
	case KindInt:
		return len(s.ints)
	default:
		return len(s.strings)
	}
}

// MissingAt reports whether row i holds no value.
func (s Series) MissingAt(i int) bool {
	return s.missing[i]
}

// FloatAt returns the float value at row i. It is zero for missing
// rows and for columns of another kind.
func (s Series) FloatAt(i int) float64 {
	if s.kind != KindFloat || s.missing[i] {
		return 0
	}
	return s.floats[i]
}

// IntAt returns the integer value at row i. It is zero for missing
// rows and for columns of another kind.
func (s Series) IntAt(i int) int64 {
	if s.kind != KindInt || s.missing[i] {
		return 0
	}
	return s.ints[i]
}

// StringAt returns the string value at row i. It is empty for missing
// rows and for columns of another kind.
func (s Series) StringAt(i int) string {
	if s.kind != KindString || s.missing[i] {
		return ""
	}
	return s.strings[i]
}

// Render formats row i for display or export. Missing rows render as
// the empty string; floats render in their shortest exact form.
func (s Series) Render(i int) string {
	if s.missing[i] {
		return ""
	}
	switch s.kind {
	case KindFloat:
		return strconv.FormatFloat(s.floats[i], 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(s.ints[i], 10)
	default:
		return s.strings[i]
	}
}

// take returns a copy of the series holding only the given rows, in
// order.
func (s Series) take(rows []int) Series {
	out := Series{name: s.name, kind: s.kind, missing: make([]bool, len(rows))}
	switch s.kind {
	case KindFloat:
		out.floats = make([]float64, len(rows))
		for j, i := range rows {
			out.floats[j] = s.floats[i]
		}
	case KindInt:
		out.ints = make([]int64, len(rows))
		for j, i := range rows {
			out.ints[j] = s.ints[i]
		}
	default:
		out.strings = make([]string, len(rows))
		for j, i := range rows {
			out.strings[j] = s.strings[i]
		}
	}
	for j, i := range rows {
		out.missing[j] = s.missing[i]
	}
	return out
}

// Dataset is a formatted result: typed columns in query order, all the
// same length. Formatting is not re-applied to a Dataset; the type
// itself marks the work as done.
type Dataset struct {
	Columns []Series
}

// NewDataset bundles columns into a dataset.
func NewDataset(columns []Series) *Dataset {
	return &Dataset{Columns: columns}
}

// Tag returns the dataset capability consumed by downstream layers.
func (d *Dataset) Tag() string { return DatasetTag }

// NumRows returns the row count, zero for a dataset with no columns.
func (d *Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name()
	}
	return names
}

// Column returns the first column with the given name.
func (d *Dataset) Column(name string) (Series, bool) {
	for _, c := range d.Columns {
		if c.Name() == name {
			return c, true
		}
	}
	return Series{}, false
}

// FilterRows returns a dataset holding only the rows keep accepts.
func (d *Dataset) FilterRows(keep func(row int) bool) *Dataset {
	var rows []int
	for i := 0; i < d.NumRows(); i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	columns := make([]Series, len(d.Columns))
	for i, c := range d.Columns {
		columns[i] = c.take(rows)
	}
	return &Dataset{Columns: columns}
}

// Row renders one row as display strings, one per column.
func (d *Dataset) Row(i int) []string {
	out := make([]string, len(d.Columns))
	for j, c := range d.Columns {
		out[j] = c.Render(i)
	}
	return out
}
