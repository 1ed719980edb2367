// Package census provides a client for the Census Bureau ACS PUMS API.
package census

import (
	"fmt"
	"strings"

	"github.com/srharri3/pumsflow/internal/model"
)

// DefaultHost is the public Census API root.
const DefaultHost = "https://api.census.gov"

// DataURL builds the microdata query URL for a spec: the one-year PUMS
// dataset for the spec's year, the spec's field list, and a geography
// clause restricting rows to the subset codes. The upstream API
// documents comma and colon literally in the query string, so the
// query is assembled by hand; every value comes from the catalog's
// alphanumeric character set and needs no escaping.
func DataURL(host, apiKey string, spec model.QuerySpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/data/%d/acs/acs1/pums", host, spec.Year)
	b.WriteString("?get=")
	b.WriteString(strings.Join(spec.Fields(), ","))
	b.WriteString("&for=")
	b.WriteString(model.QueryGeoLevel(spec.GeoLevel))
	b.WriteString(":")
	b.WriteString(strings.Join(spec.GeoSubset, ","))
	if apiKey != "" {
		b.WriteString("&key=")
		b.WriteString(apiKey)
	}
	return b.String()
}

// DictionaryURL builds the variables endpoint URL publishing one
// variable's metadata, including its code dictionary, for a survey
// year.
func DictionaryURL(host, varName string, year int) string {
	return fmt.Sprintf("%s/data/%d/acs/acs1/pums/variables/%s.json", host, year, varName)
}
