package validate

import (
	"testing"

	"github.com/srharri3/pumsflow/internal/model"
)

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		want bool
	}{
		{name: "lower bound", year: 2010, want: true},
		{name: "upper bound", year: 2022, want: true},
		{name: "mid range", year: 2017, want: true},
		{name: "below range", year: 2009, want: false},
		{name: "above range", year: 2023, want: false},
		{name: "zero", year: 0, want: false},
		{name: "negative", year: -2015, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Year(tt.year); got != tt.want {
				t.Errorf("Year(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestNumericVars(t *testing.T) {
	tests := []struct {
		name string
		vars []string
		want bool
	}{
		{name: "plain numeric vars", vars: []string{"AGEP", "PWGTP"}, want: true},
		{name: "time interval vars count as numeric", vars: []string{"JWAP", "JWDP"}, want: true},
		{name: "full allow list", vars: []string{"AGEP", "GASP", "GRPIP", "JWAP", "JWDP", "JWMNP", "PWGTP"}, want: true},
		{name: "categorical var rejected", vars: []string{"AGEP", "SEX"}, want: false},
		{name: "unknown var rejected", vars: []string{"PINCP"}, want: false},
		{name: "lower case rejected", vars: []string{"agep"}, want: false},
		{name: "empty list rejected", vars: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericVars(tt.vars); got != tt.want {
				t.Errorf("NumericVars(%v) = %v, want %v", tt.vars, got, tt.want)
			}
		})
	}
}

func TestCategoricalVars(t *testing.T) {
	tests := []struct {
		name string
		vars []string
		want bool
	}{
		{name: "single var", vars: []string{"SEX"}, want: true},
		{name: "full allow list", vars: []string{"SEX", "FER", "HHL", "HISPEED", "JWTRNS", "SCH", "SCHL"}, want: true},
		{name: "numeric var rejected", vars: []string{"AGEP"}, want: false},
		{name: "time interval var rejected", vars: []string{"JWAP"}, want: false},
		{name: "geography name rejected", vars: []string{"State"}, want: false},
		{name: "empty list passes", vars: []string{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoricalVars(tt.vars); got != tt.want {
				t.Errorf("CategoricalVars(%v) = %v, want %v", tt.vars, got, tt.want)
			}
		})
	}
}

func TestGeoLevel(t *testing.T) {
	tests := []struct {
		level string
		want  bool
	}{
		{level: "All", want: true},
		{level: "Region", want: true},
		{level: "Division", want: true},
		{level: "State", want: true},
		{level: "state", want: false},
		{level: "PUMA", want: false},
		{level: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := GeoLevel(tt.level); got != tt.want {
				t.Errorf("GeoLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.QuerySpec)
		want   bool
	}{
		{name: "defaults pass", mutate: func(*model.QuerySpec) {}, want: true},
		{name: "bad year", mutate: func(q *model.QuerySpec) { q.Year = 2009 }, want: false},
		{name: "bad numeric var", mutate: func(q *model.QuerySpec) { q.NumericVars = []string{"SEX"} }, want: false},
		{name: "no numeric vars", mutate: func(q *model.QuerySpec) { q.NumericVars = nil }, want: false},
		{name: "bad categorical var", mutate: func(q *model.QuerySpec) { q.CategoricalVars = []string{"AGEP"} }, want: false},
		{name: "bad geo level", mutate: func(q *model.QuerySpec) { q.GeoLevel = "County" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := model.DefaultQuerySpec()
			tt.mutate(&q)
			if got := Spec(q); got != tt.want {
				t.Errorf("Spec(%+v) = %v, want %v", q, got, tt.want)
			}
		})
	}
}
