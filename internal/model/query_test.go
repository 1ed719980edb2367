package model

import (
	"reflect"
	"testing"
)

func TestDefaultQuerySpec(t *testing.T) {
	got := DefaultQuerySpec()
	want := QuerySpec{
		Year:            2022,
		NumericVars:     []string{"AGEP", "PWGTP"},
		CategoricalVars: []string{"SEX"},
		GeoLevel:        GeoLevelAll,
		GeoSubset:       []string{"17"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultQuerySpec() = %+v, want %+v", got, want)
	}
}

func TestQuerySpec_Fields(t *testing.T) {
	tests := []struct {
		name string
		spec QuerySpec
		want []string
	}{
		{
			name: "weight appended when absent",
			spec: QuerySpec{NumericVars: []string{"AGEP"}, CategoricalVars: []string{"SEX"}},
			want: []string{"AGEP", "PWGTP", "SEX"},
		},
		{
			name: "weight kept in place when present",
			spec: QuerySpec{NumericVars: []string{"PWGTP", "AGEP"}, CategoricalVars: []string{"SEX"}},
			want: []string{"PWGTP", "AGEP", "SEX"},
		},
		{
			name: "numeric block precedes categorical block",
			spec: QuerySpec{NumericVars: []string{"JWMNP", "JWAP"}, CategoricalVars: []string{"SCHL", "SEX"}},
			want: []string{"JWMNP", "JWAP", "PWGTP", "SCHL", "SEX"},
		},
		{
			name: "no numeric vars still carries the weight",
			spec: QuerySpec{CategoricalVars: []string{"HHL"}},
			want: []string{"PWGTP", "HHL"},
		},
		{
			name: "no categorical vars",
			spec: QuerySpec{NumericVars: []string{"GASP", "PWGTP"}},
			want: []string{"GASP", "PWGTP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Fields(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuerySpec_Fields_DoesNotMutateSpec(t *testing.T) {
	spec := QuerySpec{NumericVars: []string{"AGEP"}}
	_ = spec.Fields()
	if !reflect.DeepEqual(spec.NumericVars, []string{"AGEP"}) {
		t.Errorf("Fields() mutated NumericVars: %v", spec.NumericVars)
	}
}

func TestQueryGeoLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{level: GeoLevelAll, want: GeoLevelState},
		{level: GeoLevelState, want: GeoLevelState},
		{level: GeoLevelRegion, want: GeoLevelRegion},
		{level: GeoLevelDivision, want: GeoLevelDivision},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := QueryGeoLevel(tt.level); got != tt.want {
				t.Errorf("QueryGeoLevel(%q) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestQuerySpec_WithYear(t *testing.T) {
	spec := DefaultQuerySpec()
	got := spec.WithYear(2015)
	if got.Year != 2015 {
		t.Errorf("WithYear(2015).Year = %d, want 2015", got.Year)
	}
	if spec.Year != 2022 {
		t.Errorf("WithYear mutated the receiver: Year = %d, want 2022", spec.Year)
	}
	if !reflect.DeepEqual(got.NumericVars, spec.NumericVars) {
		t.Errorf("WithYear changed NumericVars: %v", got.NumericVars)
	}
}
