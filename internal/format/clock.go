// Package format decodes raw PUMS tables into typed datasets: numeric
// coercion, dictionary joins, and clock-interval midpoints.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// intervalPattern matches the dictionary labels for arrival and
// departure intervals, e.g. "6:00 a.m. to 6:09 a.m.".
var intervalPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (a\.m\.|p\.m\.) to (\d{1,2}):(\d{2}) (a\.m\.|p\.m\.)$`)

// clockTime is one side of an interval label, kept in its printed
// 12-hour form.
type clockTime struct {
	meridiem string
	hour     int
	minute   int
}

// decodeTimeLabel turns a dictionary interval label into its display
// value: not-applicable labels collapse to the literal "N/A", interval
// labels decode to their midpoint.
func decodeTimeLabel(label string) (string, error) {
	if strings.HasPrefix(label, "N/A") {
		return "N/A", nil
	}

	left, right, err := parseInterval(label)
	if err != nil {
		return "", err
	}

	// Midpoint on the printed components independently. Hours and
	// minutes each move halfway with floored division, and the result
	// keeps the left side's meridiem.
	hour := left.hour + floorDiv(right.hour-left.hour, 2)
	minute := left.minute + floorDiv(right.minute-left.minute, 2)

	return fmt.Sprintf("%d:%02d %s", hour, minute, left.meridiem), nil
}

// parseInterval splits an interval label into its two clock readings.
func parseInterval(label string) (clockTime, clockTime, error) {
	m := intervalPattern.FindStringSubmatch(label)
	if m == nil {
		return clockTime{}, clockTime{}, fmt.Errorf("unrecognized time interval %q", label)
	}

	left := clockTime{
		hour:     mustAtoi(m[1]),
		minute:   mustAtoi(m[2]),
		meridiem: m[3],
	}
	right := clockTime{
		hour:     mustAtoi(m[4]),
		minute:   mustAtoi(m[5]),
		meridiem: m[6],
	}
	return left, right, nil
}

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which shifts midpoints for
// intervals that cross an hour boundary.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mustAtoi converts digits already vetted by intervalPattern.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("non-numeric submatch %q", s))
	}
	return n
}
