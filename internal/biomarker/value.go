package biomarker

import (
	"math"
	"strconv"
	"strings"
)

// dataNotAvailable is the literal phrase some lab exports use in place
// of a value.
const dataNotAvailable = "data not available"

// sentinelValues are case-insensitive tokens meaning "no value".
var sentinelValues = map[string]bool{
	dataNotAvailable: true,
	"n/a":            true,
	"na":             true,
	"pending":        true,
	"none":           true,
	"null":           true,
}

// CleanValue removes comparison-operator characters like '<', '>' or
// '=' that lab reports prefix to out-of-range values, plus surrounding
// whitespace. It never fails; a value that is only operators cleans to
// the empty string. CleanValue is idempotent.
func CleanValue(val string) string {
	if val == "" {
		return ""
	}

	cleaned := strings.NewReplacer("<", "", ">", "", "=", "").Replace(val)
	return strings.TrimSpace(cleaned)
}

// IsValidNumeric reports whether a cleaned value string is a usable
// measurement: non-empty, not a sentinel token, and parseable as a
// finite decimal or scientific-notation number.
func IsValidNumeric(val string) bool {
	if val == "" {
		return false
	}

	if sentinelValues[strings.ToLower(val)] {
		return false
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return false
	}

	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// NormalizeUnit prepares a unit token for query encoding. A percent
// unit is itself percent-encoded before the outer encoding pass; the
// receiving calculator's decoder expects this doubled escaping.
func NormalizeUnit(unit string) string {
	if unit == "%" {
		return "%25"
	}
	return unit
}
