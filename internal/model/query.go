package model

// Survey year bounds for the one-year ACS PUMS files this module
// supports. 2020 sits inside the range even though the upstream API
// has no standard one-year file for it; requests for it fail at fetch
// time, not validation time.
const (
	MinYear = 2010
	MaxYear = 2022
)

// Geography levels accepted in a query. GeoLevelAll is a display
// alias: it queries at state scope and differs only in intent.
const (
	GeoLevelAll      = "All"
	GeoLevelRegion   = "Region"
	GeoLevelDivision = "Division"
	GeoLevelState    = "State"
)

// GeoLevels lists the accepted geography levels in display order.
var GeoLevels = []string{GeoLevelAll, GeoLevelRegion, GeoLevelDivision, GeoLevelState}

// WeightVar is the person-weight variable carried by every query so
// downstream summaries can weight rows.
const WeightVar = "PWGTP"

// QuerySpec describes one PUMS data request.
type QuerySpec struct {
	// Year is the survey year of the one-year file to query.
	Year int

	// NumericVars are the numeric and time-interval variables to
	// request, in the order they should appear in the result.
	NumericVars []string

	// CategoricalVars are the categorical variables to request,
	// appended after the numeric ones.
	CategoricalVars []string

	// GeoLevel is the geography granularity of the request.
	GeoLevel string

	// GeoSubset restricts the request to these geography codes, or to
	// all areas at the level when it holds the single value "*".
	GeoSubset []string
}

// DefaultQuerySpec returns the documented defaults: the 2022 survey,
// age plus person weight, sex, and state scope subset to Illinois.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{
		Year:            2022,
		NumericVars:     []string{"AGEP", WeightVar},
		CategoricalVars: []string{"SEX"},
		GeoLevel:        GeoLevelAll,
		GeoSubset:       []string{"17"},
	}
}

// QueryGeoLevel resolves the level actually sent upstream: All queries
// at state scope, every other level passes through.
func QueryGeoLevel(level string) string {
	if level == GeoLevelAll {
		return GeoLevelState
	}
	return level
}

// Fields returns the request's variable list in result order: numeric
// variables first, categorical after, with the person weight appended
// to the numeric block when the caller left it out.
func (q QuerySpec) Fields() []string {
	numeric := q.NumericVars
	if !containsString(numeric, WeightVar) {
		numeric = append(append([]string{}, numeric...), WeightVar)
	}
	fields := make([]string, 0, len(numeric)+len(q.CategoricalVars))
	fields = append(fields, numeric...)
	fields = append(fields, q.CategoricalVars...)
	return fields
}

// WithYear returns a copy of the spec targeting another survey year.
// Slices are shared with the receiver; callers treat specs as
// read-only once built.
func (q QuerySpec) WithYear(year int) QuerySpec {
	q.Year = year
	return q
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
