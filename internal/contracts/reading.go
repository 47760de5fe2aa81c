package contracts

import "time"

// DateLayout is the calendar date format for measurement and cutoff dates.
const DateLayout = "2006-01-02"

// Reading is a single lab measurement row, immutable once ingested.
//
// Row is the zero-based ordinal of the reading in the original input.
// It is the explicit secondary sort key for latest-wins folding: when two
// readings for the same marker share a date, the later row wins.
type Reading struct {
	Biomarker string    `json:"biomarker"`
	Value     string    `json:"value"`
	Unit      string    `json:"unit"`
	Date      time.Time `json:"date"`
	Row       int       `json:"row"`
}

// DateKey returns the reading's measurement date as YYYY-MM-DD.
func (r Reading) DateKey() string {
	return r.Date.Format(DateLayout)
}

// BatchEntry is one encoded calculator query for one cutoff date.
// The JSON field names match the persisted batch file format.
type BatchEntry struct {
	Date string `json:"date"`
	URL  string `json:"url"`
}

// GenerateStats carries per-batch diagnostics. None of these are errors:
// rows and dates are skipped locally and the batch continues.
type GenerateStats struct {
	CutoffDates     int      `json:"cutoff_dates"`
	Generated       int      `json:"generated"`
	EmptyDates      []string `json:"empty_dates,omitempty"`
	IncompleteDates []string `json:"incomplete_dates,omitempty"`
	SkippedValues   int      `json:"skipped_values"`
	UnresolvedNames int      `json:"unresolved_names"`
}
