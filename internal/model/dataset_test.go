package model

import (
	"reflect"
	"testing"
)

func TestSeries_Accessors(t *testing.T) {
	s := NewFloatSeries("AGEP", []float64{25, 0, 40}, []bool{false, true, false})

	if s.Name() != "AGEP" || s.Kind() != KindFloat || s.Len() != 3 {
		t.Fatalf("series shape = %q %v %d", s.Name(), s.Kind(), s.Len())
	}
	if s.FloatAt(0) != 25 || s.FloatAt(2) != 40 {
		t.Errorf("FloatAt values = %v, %v", s.FloatAt(0), s.FloatAt(2))
	}
	if !s.MissingAt(1) || s.MissingAt(0) {
		t.Errorf("missing mask wrong: %v %v", s.MissingAt(1), s.MissingAt(0))
	}
	// Kind mismatches read as zero values rather than panicking.
	if s.IntAt(0) != 0 || s.StringAt(0) != "" {
		t.Errorf("cross-kind access = %v, %q", s.IntAt(0), s.StringAt(0))
	}
}

func TestSeries_NilMaskMeansPresent(t *testing.T) {
	s := NewIntSeries("Year", []int64{2021, 2022}, nil)
	for i := 0; i < s.Len(); i++ {
		if s.MissingAt(i) {
			t.Errorf("row %d unexpectedly missing", i)
		}
	}
}

func TestSeries_Render(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		row    int
		want   string
	}{
		{name: "whole float", series: NewFloatSeries("AGEP", []float64{25}, nil), row: 0, want: "25"},
		{name: "fractional float", series: NewFloatSeries("GRPIP", []float64{31.5}, nil), row: 0, want: "31.5"},
		{name: "int", series: NewIntSeries("Year", []int64{2022}, nil), row: 0, want: "2022"},
		{name: "string", series: NewStringSeries("SEX", []string{"Female"}, nil), row: 0, want: "Female"},
		{name: "missing renders empty", series: NewStringSeries("SEX", []string{"x"}, []bool{true}), row: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.Render(tt.row); got != tt.want {
				t.Errorf("Render(%d) = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestDataset_Shape(t *testing.T) {
	d := NewDataset([]Series{
		NewFloatSeries("AGEP", []float64{25, 40}, nil),
		NewStringSeries("SEX", []string{"Male", "Female"}, nil),
	})

	if d.Tag() != "census" {
		t.Errorf("Tag() = %q, want census", d.Tag())
	}
	if d.NumRows() != 2 || d.NumColumns() != 2 {
		t.Errorf("shape = %d rows, %d cols", d.NumRows(), d.NumColumns())
	}
	if got := d.Names(); !reflect.DeepEqual(got, []string{"AGEP", "SEX"}) {
		t.Errorf("Names() = %v", got)
	}

	col, ok := d.Column("SEX")
	if !ok || col.StringAt(1) != "Female" {
		t.Errorf("Column(SEX) = %v, %v", col, ok)
	}
	if _, ok := d.Column("HHL"); ok {
		t.Error("Column(HHL) unexpectedly found")
	}
}

func TestDataset_NumRowsEmpty(t *testing.T) {
	if got := NewDataset(nil).NumRows(); got != 0 {
		t.Errorf("NumRows() on empty dataset = %d", got)
	}
}

func TestDataset_FilterRows(t *testing.T) {
	d := NewDataset([]Series{
		NewFloatSeries("AGEP", []float64{25, 0, 40}, []bool{false, true, false}),
		NewStringSeries("SEX", []string{"Male", "SEX", "Female"}, []bool{false, false, false}),
		NewIntSeries("Year", []int64{2021, 2021, 2021}, nil),
	})

	first := d.Columns[0]
	got := d.FilterRows(func(i int) bool { return !first.MissingAt(i) })

	if got.NumRows() != 2 {
		t.Fatalf("filtered rows = %d, want 2", got.NumRows())
	}
	if got.Columns[0].FloatAt(1) != 40 || got.Columns[1].StringAt(1) != "Female" {
		t.Errorf("row 1 after filter = %v, %q",
			got.Columns[0].FloatAt(1), got.Columns[1].StringAt(1))
	}
	if got.Columns[2].IntAt(0) != 2021 {
		t.Errorf("year column lost after filter: %v", got.Columns[2].IntAt(0))
	}
	// Source dataset is untouched.
	if d.NumRows() != 3 {
		t.Errorf("FilterRows mutated source: %d rows", d.NumRows())
	}
}

func TestDataset_Row(t *testing.T) {
	d := NewDataset([]Series{
		NewFloatSeries("JWMNP", []float64{15}, nil),
		NewStringSeries("JWAP", []string{"7:12 a.m."}, nil),
		NewIntSeries("Year", []int64{2022}, nil),
	})
	want := []string{"15", "7:12 a.m.", "2022"}
	if got := d.Row(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Row(0) = %v, want %v", got, want)
	}
}
