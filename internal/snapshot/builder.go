package snapshot

import (
	"time"

	"github.com/wonny/bloodage/internal/biomarker"
	"github.com/wonny/bloodage/internal/contracts"
)

// BuildStats counts readings discarded while folding one cutoff date.
// Discards are expected (panels carry markers no formula tracks) and
// are surfaced for diagnostics only.
type BuildStats struct {
	Unresolved    int // raw names not in the alias table
	InvalidValues int // non-numeric or sentinel values
}

// Builder folds raw readings into per-cutoff snapshots for one formula.
type Builder struct {
	resolver  *biomarker.Resolver
	birthdate time.Time
}

// NewBuilder creates a snapshot builder for the given resolver and
// birthdate.
func NewBuilder(resolver *biomarker.Resolver, birthdate time.Time) *Builder {
	return &Builder{
		resolver:  resolver,
		birthdate: birthdate,
	}
}

// candidate tracks the winning reading per ID during the fold, keeping
// the input ordinal so equal-date ties resolve deterministically.
type candidate struct {
	entry Entry
	row   int
}

// Build computes the latest-known-value-per-biomarker snapshot as of
// the cutoff date:
//
//  1. Unresolvable names are discarded, as are raw readings for the
//     reserved age ID (age is synthesized below).
//  2. Values are cleaned; non-numeric survivors are discarded.
//  3. Readings dated strictly after the cutoff are discarded.
//  4. Per ID the reading with the maximum date wins; on equal dates the
//     reading later in input order wins. The input-order tie-break is
//     deliberate: it makes "latest wins" reproducible instead of
//     depending on traversal order.
//  5. The derived age entry is inserted under the reserved ID.
//
// An empty result (no survivors) is returned as-is; callers skip the
// date rather than treating it as an error.
func (b *Builder) Build(readings []contracts.Reading, cutoff time.Time) (Snapshot, BuildStats) {
	var stats BuildStats
	winners := make(map[biomarker.ID]candidate)

	for _, r := range readings {
		id, ok := b.resolver.Resolve(r.Biomarker)
		if !ok {
			stats.Unresolved++
			continue
		}

		// Age is derived from the birthdate, not measured.
		if id == biomarker.Age {
			continue
		}

		value := biomarker.CleanValue(r.Value)
		if !biomarker.IsValidNumeric(value) {
			stats.InvalidValues++
			continue
		}

		if r.Date.After(cutoff) {
			continue
		}

		cur, exists := winners[id]
		if exists {
			if r.Date.Before(cur.entry.Date) {
				continue
			}
			if r.Date.Equal(cur.entry.Date) && r.Row < cur.row {
				continue
			}
		}

		winners[id] = candidate{
			entry: Entry{Value: value, Unit: r.Unit, Date: r.Date},
			row:   r.Row,
		}
	}

	snap := Snapshot{
		Cutoff:  cutoff,
		Entries: make(map[biomarker.ID]Entry, len(winners)+1),
	}
	for id, c := range winners {
		snap.Entries[id] = c.entry
	}

	if !snap.IsEmpty() {
		snap.Entries[biomarker.Age] = Entry{
			Value: FormatAge(AgeAt(b.birthdate, cutoff)),
			Unit:  "years",
			Date:  cutoff,
		}
	}

	return snap, stats
}
