package model

import (
	"sort"
	"strconv"
)

// LookupEntry is one code to label pair from a variable dictionary.
type LookupEntry struct {
	Code  string
	Label string
}

// Lookup is a resolved variable dictionary for one variable and survey
// year: every code the variable takes, with its label, ordered
// ascending by code. Time-interval decoding relies on the ordering to
// keep interval boundaries sequential.
type Lookup struct {
	Var     string
	Year    int
	Entries []LookupEntry

	byCode   map[string]string
	byNumber map[float64]string
}

// NewLookup flattens a raw code to label map into an ordered Lookup.
// Codes that parse as numbers order numerically, so zero-padded and
// bare forms of the same code sort together; everything else orders
// lexically after the numeric block.
func NewLookup(varName string, year int, items map[string]string) Lookup {
	entries := make([]LookupEntry, 0, len(items))
	for code, label := range items {
		entries = append(entries, LookupEntry{Code: code, Label: label})
	}
	sort.Slice(entries, func(i, j int) bool {
		return codeLess(entries[i].Code, entries[j].Code)
	})

	byCode := make(map[string]string, len(entries))
	byNumber := make(map[float64]string, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e.Label
		if n, err := strconv.ParseFloat(e.Code, 64); err == nil {
			if _, seen := byNumber[n]; !seen {
				byNumber[n] = e.Label
			}
		}
	}
	return Lookup{Var: varName, Year: year, Entries: entries, byCode: byCode, byNumber: byNumber}
}

// Len returns the number of entries.
func (l Lookup) Len() int {
	return len(l.Entries)
}

// Label returns the label for a code, matched exactly.
func (l Lookup) Label(code string) (string, bool) {
	label, ok := l.byCode[code]
	return label, ok
}

// LabelForNumber returns the label whose code parses to n. Data cells
// and dictionary codes disagree on zero padding for some variables, so
// time-interval joins match numerically rather than textually.
func (l Lookup) LabelForNumber(n float64) (string, bool) {
	label, ok := l.byNumber[n]
	return label, ok
}

// codeLess orders two codes: numerically when both parse, with the
// textual form breaking ties, and numeric codes ahead of non-numeric.
func codeLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
