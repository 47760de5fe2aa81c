package batch

import (
	"sort"

	"github.com/wonny/bloodage/internal/contracts"
)

// Merge reconciles freshly computed entries into the persisted set.
// History is append-only: a date already persisted keeps its existing
// record even if the fresh computation would encode differently, so
// merging the same fresh batch twice is a no-op the second time.
//
// The result is a new slice sorted ascending by date with each date
// present at most once; neither input is mutated.
func Merge(persisted, fresh []contracts.BatchEntry) []contracts.BatchEntry {
	existing := make(map[string]bool, len(persisted))
	for _, e := range persisted {
		existing[e.Date] = true
	}

	merged := make([]contracts.BatchEntry, 0, len(persisted)+len(fresh))
	merged = append(merged, persisted...)

	for _, e := range fresh {
		if existing[e.Date] {
			continue
		}
		existing[e.Date] = true
		merged = append(merged, e)
	}

	// ISO dates sort lexicographically in chronological order.
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })

	return merged
}

// NewDates returns how many fresh entries carry dates absent from the
// persisted set.
func NewDates(persisted, fresh []contracts.BatchEntry) int {
	existing := make(map[string]bool, len(persisted))
	for _, e := range persisted {
		existing[e.Date] = true
	}

	count := 0
	for _, e := range fresh {
		if !existing[e.Date] {
			count++
		}
	}

	return count
}
