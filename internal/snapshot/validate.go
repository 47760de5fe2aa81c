package snapshot

import (
	"sort"

	"github.com/wonny/bloodage/internal/biomarker"
)

// Validate checks a snapshot against a formula's required-ID set.
// Missing IDs come back sorted so diagnostics are stable run to run.
// A failing snapshot must be skipped entirely; partial data is never
// emitted for a strict formula.
func Validate(snap Snapshot, required []biomarker.ID) (bool, []biomarker.ID) {
	var missing []biomarker.ID
	for _, id := range required {
		if _, ok := snap.Entries[id]; !ok {
			missing = append(missing, id)
		}
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return len(missing) == 0, missing
}
