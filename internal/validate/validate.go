// Package validate holds the pure predicates gating every query before
// any network work happens. Each predicate answers yes or no; callers
// turn a failed gate into an invalid-query error.
package validate

import "github.com/srharri3/pumsflow/internal/model"

// Year checks that a survey year falls inside the supported one-year
// ACS range.
func Year(year int) bool {
	return year >= model.MinYear && year <= model.MaxYear
}

// NumericVars checks that at least one numeric variable is requested
// and that every one is a variable the catalog accepts as numeric.
// Time-interval variables count: their raw codes are numeric on the
// wire.
func NumericVars(vars []string) bool {
	return len(vars) > 0 && allIn(vars, model.NumericFieldNames())
}

// CategoricalVars checks that every requested categorical variable is
// one the catalog accepts as categorical. An empty list passes.
func CategoricalVars(vars []string) bool {
	return allIn(vars, model.CategoricalFieldNames())
}

// GeoLevel checks that a geography level is one of the accepted
// levels. Matching is exact; the levels are display-cased.
func GeoLevel(level string) bool {
	for _, l := range model.GeoLevels {
		if level == l {
			return true
		}
	}
	return false
}

// Spec runs the whole gate: year, both variable lists, and the
// geography level must all pass.
func Spec(q model.QuerySpec) bool {
	return Year(q.Year) &&
		NumericVars(q.NumericVars) &&
		CategoricalVars(q.CategoricalVars) &&
		GeoLevel(q.GeoLevel)
}

func allIn(vars, allowed []string) bool {
	for _, v := range vars {
		found := false
		for _, a := range allowed {
			if v == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
