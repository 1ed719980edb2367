// Package model defines the types shared across the pumsflow pipeline:
// the PUMS field catalog, query specifications, raw response tables,
// variable dictionaries, and formatted datasets.
package model

// FieldClass tags how a catalog field's raw values are decoded during
// formatting.
type FieldClass int

const (
	// ClassNumeric fields coerce straight to float64.
	ClassNumeric FieldClass = iota
	// ClassTimeInterval fields carry codes for clock-time intervals
	// that decode to the interval midpoint.
	ClassTimeInterval
	// ClassCategorical fields carry codes resolved to labels through a
	// per-variable dictionary.
	ClassCategorical
	// ClassGeography fields name the geography dimension of a query.
	// Their codes resolve like categorical fields, under the upstream
	// token the API publishes the dictionary as.
	ClassGeography
)

// String renders the class the way the vars command lists it.
func (c FieldClass) String() string {
	switch c {
	case ClassNumeric:
		return "numeric"
	case ClassTimeInterval:
		return "time interval"
	case ClassCategorical:
		return "categorical"
	case ClassGeography:
		return "geography"
	default:
		return "unknown"
	}
}

// Field is one entry in the PUMS catalog.
type Field struct {
	// Name is the catalog name: the API variable for person-level
	// fields, or the display-cased geography level.
	Name string

	// Class determines the decoding rule applied to the field.
	Class FieldClass

	// Label is the human description shown by the vars command.
	Label string

	// Token overrides the upstream dictionary name when it differs
	// from Name, as it does for the geography levels.
	Token string
}

// LookupToken returns the upstream variable name whose dictionary
// describes this field's codes.
func (f Field) LookupToken() string {
	if f.Token != "" {
		return f.Token
	}
	return f.Name
}

// Catalog lists every PUMS field this module understands, in display
// order. The set is fixed per supported dataset vintage; validators and
// the formatter both consult it rather than carrying their own lists.
var Catalog = []Field{
	{Name: "AGEP", Class: ClassNumeric, Label: "Age"},
	{Name: "GASP", Class: ClassNumeric, Label: "Gas cost (monthly)"},
	{Name: "GRPIP", Class: ClassNumeric, Label: "Gross rent as a percentage of household income"},
	{Name: "JWMNP", Class: ClassNumeric, Label: "Travel time to work (minutes)"},
	{Name: "PWGTP", Class: ClassNumeric, Label: "Person weight"},
	{Name: "JWAP", Class: ClassTimeInterval, Label: "Time of arrival at work"},
	{Name: "JWDP", Class: ClassTimeInterval, Label: "Time of departure for work"},
	{Name: "SEX", Class: ClassCategorical, Label: "Sex"},
	{Name: "FER", Class: ClassCategorical, Label: "Gave birth to child within the past 12 months"},
	{Name: "HHL", Class: ClassCategorical, Label: "Household language"},
	{Name: "HISPEED", Class: ClassCategorical, Label: "Broadband internet service"},
	{Name: "JWTRNS", Class: ClassCategorical, Label: "Means of transportation to work"},
	{Name: "SCH", Class: ClassCategorical, Label: "School enrollment"},
	{Name: "SCHL", Class: ClassCategorical, Label: "Educational attainment"},
	{Name: "Region", Class: ClassGeography, Label: "Census region", Token: "REGION"},
	{Name: "Division", Class: ClassGeography, Label: "Census division", Token: "DIVISION"},
	{Name: "State", Class: ClassGeography, Label: "State or equivalent", Token: "ST"},
}

// FieldByName looks a field up by its catalog name. Matching is
// case-sensitive: response headers arrive lower-cased for geography
// columns and are handled by GeoColumn instead.
func FieldByName(name string) (Field, bool) {
	for _, f := range Catalog {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// FieldsOfClass returns the catalog fields of one class, in catalog
// order.
func FieldsOfClass(class FieldClass) []Field {
	var out []Field
	for _, f := range Catalog {
		if f.Class == class {
			out = append(out, f)
		}
	}
	return out
}

// NumericFieldNames returns the names accepted as numeric variables in
// a query: the numeric fields plus the time-interval fields, whose raw
// codes are numeric on the wire.
func NumericFieldNames() []string {
	names := make([]string, 0, 8)
	for _, f := range Catalog {
		if f.Class == ClassNumeric || f.Class == ClassTimeInterval {
			names = append(names, f.Name)
		}
	}
	return names
}

// CategoricalFieldNames returns the names accepted as categorical
// variables in a query.
func CategoricalFieldNames() []string {
	names := make([]string, 0, 8)
	for _, f := range Catalog {
		if f.Class == ClassCategorical {
			names = append(names, f.Name)
		}
	}
	return names
}

// GeoColumn maps a response header to its geography dictionary token.
// The API lower-cases geography column names, so these are matched
// separately from the catalog.
func GeoColumn(name string) (token string, ok bool) {
	switch name {
	case "region":
		return "REGION", true
	case "division":
		return "DIVISION", true
	case "state":
		return "ST", true
	}
	return "", false
}

// GeoColumnNames lists the lower-cased geography headers in resolution
// priority order.
func GeoColumnNames() []string {
	return []string{"region", "division", "state"}
}
