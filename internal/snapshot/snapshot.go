package snapshot

import (
	"sort"
	"time"

	"github.com/wonny/bloodage/internal/biomarker"
)

// Entry is the latest known value for one biomarker as of a cutoff date.
type Entry struct {
	Value string    `json:"value"`
	Unit  string    `json:"unit,omitempty"`
	Date  time.Time `json:"date"` // source measurement date, <= cutoff
}

// Snapshot is the latest-known-value-per-biomarker state as of one
// cutoff date. It is owned by a single Build invocation and discarded
// after encoding; only the encoded entry survives into the batch store.
type Snapshot struct {
	Cutoff  time.Time
	Entries map[biomarker.ID]Entry
}

// IsEmpty reports whether no readings survived for this cutoff. An
// empty snapshot means "skip this date", never a failure.
func (s Snapshot) IsEmpty() bool {
	return len(s.Entries) == 0
}

// IDs returns the present biomarker IDs in lexicographic order.
// Encoding iterates this order so identical snapshots always encode to
// byte-identical strings.
func (s Snapshot) IDs() []biomarker.ID {
	ids := make([]biomarker.ID, 0, len(s.Entries))
	for id := range s.Entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
