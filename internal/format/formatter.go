package format

import (
	"context"
	"fmt"
	"strconv"

	"github.com/srharri3/pumsflow/internal/common"
	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// Formatter decodes raw tables into typed datasets using resolved
// variable dictionaries. Formatting never mutates its input, and a
// Dataset is never formatted again; the output type marks the work as
// done.
type Formatter struct {
	resolver service.LookupResolver
}

// New creates a Formatter backed by the given resolver.
func New(resolver service.LookupResolver) *Formatter {
	return &Formatter{resolver: resolver}
}

// Format promotes the table's header to column names and decodes every
// column the catalog knows: numeric coercion, interval midpoints,
// dictionary labels. Columns the catalog does not know pass through as
// raw strings. The year selects the dictionary vintage for every join
// in the table, so a multi-year table decodes against a single
// vintage.
//
// Cells that fail coercion or match no dictionary code become missing
// values. Rows embedded by multi-year concatenation are header text,
// so they come out all-missing and are dropped by the caller's filter.
func (f *Formatter) Format(ctx context.Context, table *model.RawTable, year int) (*model.Dataset, error) {
	if table.Empty() {
		return nil, common.ErrEmptyTable
	}

	names := make([]string, len(table.Rows[0]))
	copy(names, table.Rows[0])
	// The year stamp overwrote this header cell with a year value, so
	// the name comes back by position.
	if table.YearCol >= 0 && table.YearCol < len(names) {
		names[table.YearCol] = model.YearColumnName
	}

	data := table.Rows[1:]
	geoName, geoToken := pickGeoColumn(names)

	columns := make([]model.Series, 0, len(names))
	for j, name := range names {
		series, err := f.formatColumn(ctx, name, j, table.YearCol, geoName, geoToken, data, year)
		if err != nil {
			return nil, fmt.Errorf("failed to format column %s: %w", name, err)
		}
		columns = append(columns, series)
	}

	return model.NewDataset(columns), nil
}

// pickGeoColumn selects the geography column to decode. Responses
// carry the column for the queried level; when several are present the
// coarsest wins.
func pickGeoColumn(names []string) (name, token string) {
	for _, geo := range model.GeoColumnNames() {
		for _, n := range names {
			if n == geo {
				token, _ := model.GeoColumn(geo)
				return geo, token
			}
		}
	}
	return "", ""
}

func (f *Formatter) formatColumn(ctx context.Context, name string, j, yearCol int, geoName, geoToken string, data [][]string, year int) (model.Series, error) {
	if j == yearCol {
		return yearSeries(name, data, j), nil
	}

	if field, ok := model.FieldByName(name); ok {
		switch field.Class {
		case model.ClassNumeric:
			return numericSeries(name, data, j), nil
		case model.ClassTimeInterval:
			return f.timeSeries(ctx, name, field.LookupToken(), data, j, year)
		case model.ClassCategorical, model.ClassGeography:
			return f.labelSeries(ctx, name, field.LookupToken(), data, j, year)
		}
	}

	if geoName != "" && name == geoName {
		return f.labelSeries(ctx, name, geoToken, data, j, year)
	}

	return rawSeries(name, data, j), nil
}

// yearSeries parses the stamped column as integers. Every row was
// stamped, embedded header rows included, so misses only come from
// ragged input.
func yearSeries(name string, data [][]string, j int) model.Series {
	values := make([]int64, len(data))
	missing := make([]bool, len(data))
	for i, row := range data {
		cell, ok := cellAt(row, j)
		if !ok {
			missing[i] = true
			continue
		}
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			missing[i] = true
			continue
		}
		values[i] = n
	}
	return model.NewIntSeries(name, values, missing)
}

func numericSeries(name string, data [][]string, j int) model.Series {
	values := make([]float64, len(data))
	missing := make([]bool, len(data))
	for i, row := range data {
		cell, ok := cellAt(row, j)
		if !ok {
			missing[i] = true
			continue
		}
		n, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			missing[i] = true
			continue
		}
		values[i] = n
	}
	return model.NewFloatSeries(name, values, missing)
}

// timeSeries decodes interval codes to midpoint labels. Codes join the
// dictionary numerically because data cells and dictionary keys
// disagree on zero padding.
func (f *Formatter) timeSeries(ctx context.Context, name, token string, data [][]string, j, year int) (model.Series, error) {
	lk, err := f.resolver.Resolve(ctx, token, year)
	if err != nil {
		return model.Series{}, err
	}

	values := make([]string, len(data))
	missing := make([]bool, len(data))
	for i, row := range data {
		cell, ok := cellAt(row, j)
		if !ok {
			missing[i] = true
			continue
		}
		n, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			missing[i] = true
			continue
		}
		label, ok := lk.LabelForNumber(n)
		if !ok {
			missing[i] = true
			continue
		}
		display, err := decodeTimeLabel(label)
		if err != nil {
			missing[i] = true
			continue
		}
		values[i] = display
	}
	return model.NewStringSeries(name, values, missing), nil
}

// labelSeries joins codes to labels by exact string match. Codes the
// dictionary does not list become missing without comment.
func (f *Formatter) labelSeries(ctx context.Context, name, token string, data [][]string, j, year int) (model.Series, error) {
	lk, err := f.resolver.Resolve(ctx, token, year)
	if err != nil {
		return model.Series{}, err
	}

	values := make([]string, len(data))
	missing := make([]bool, len(data))
	for i, row := range data {
		cell, ok := cellAt(row, j)
		if !ok {
			missing[i] = true
			continue
		}
		label, ok := lk.Label(cell)
		if !ok {
			missing[i] = true
			continue
		}
		values[i] = label
	}
	return model.NewStringSeries(name, values, missing), nil
}

func rawSeries(name string, data [][]string, j int) model.Series {
	values := make([]string, len(data))
	missing := make([]bool, len(data))
	for i, row := range data {
		cell, ok := cellAt(row, j)
		if !ok {
			missing[i] = true
			continue
		}
		values[i] = cell
	}
	return model.NewStringSeries(name, values, missing)
}

// cellAt reads row[j], reporting rows too short to reach it.
func cellAt(row []string, j int) (string, bool) {
	if j >= len(row) {
		return "", false
	}
	return row[j], true
}

// Ensure Formatter implements the formatter interface.
var _ service.Formatter = (*Formatter)(nil)
