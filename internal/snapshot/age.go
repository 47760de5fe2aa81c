package snapshot

import (
	"math"
	"strconv"
	"time"
)

// daysPerYear accounts for leap years when converting day counts.
const daysPerYear = 365.25

// AgeAt derives chronological age in years at a reference date,
// rounded to one decimal place. Age is a derived quantity: it is
// computed once per cutoff date, never read from the input.
func AgeAt(birthdate, reference time.Time) float64 {
	days := math.Floor(reference.Sub(birthdate).Hours() / 24)
	years := days / daysPerYear

	return math.Round(years*10) / 10
}

// FormatAge renders an age value with exactly one decimal, so 66 years
// encodes as "66.0" and repeated runs stay byte-identical.
func FormatAge(age float64) string {
	return strconv.FormatFloat(age, 'f', 1, 64)
}
