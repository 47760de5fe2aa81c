package batch

import (
	"sort"
	"time"

	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/internal/snapshot"
	"github.com/wonny/bloodage/pkg/logger"
)

// Generator produces one batch entry per cutoff date for one formula.
type Generator struct {
	formula formula.Formula
	builder *snapshot.Builder
	logger  *logger.Logger
}

// NewGenerator creates a generator for the given formula and birthdate.
func NewGenerator(f formula.Formula, birthdate time.Time, log *logger.Logger) *Generator {
	return &Generator{
		formula: f,
		builder: snapshot.NewBuilder(f.Resolver, birthdate),
		logger:  log.WithField("formula", f.Name),
	}
}

// Generate reconstructs the formula's view on every day a reading
// arrived. The cutoff-date set is exactly the distinct measurement
// dates in the input, ascending; each cutoff folds to a snapshot,
// passes the formula's completeness check, and encodes to a URL. Dates
// with empty or incomplete snapshots are skipped and reported in the
// stats, never emitted partially.
//
// Each cutoff's snapshot is independent of every other, so the loop has
// no shared state beyond the appended results.
func (g *Generator) Generate(readings []contracts.Reading) ([]contracts.BatchEntry, *contracts.GenerateStats) {
	cutoffs := cutoffDates(readings)

	stats := &contracts.GenerateStats{CutoffDates: len(cutoffs)}
	entries := make([]contracts.BatchEntry, 0, len(cutoffs))

	for _, cutoff := range cutoffs {
		dateKey := cutoff.Format(contracts.DateLayout)

		snap, buildStats := g.builder.Build(readings, cutoff)
		stats.SkippedValues += buildStats.InvalidValues
		stats.UnresolvedNames += buildStats.Unresolved

		if snap.IsEmpty() {
			g.logger.WithField("date", dateKey).Warn("No valid data for date, skipping")
			stats.EmptyDates = append(stats.EmptyDates, dateKey)
			continue
		}

		if ok, missing := snapshot.Validate(snap, g.formula.Required); !ok {
			g.logger.WithFields(map[string]interface{}{
				"date":    dateKey,
				"missing": missing,
			}).Warn("Incomplete biomarker data for date, skipping")
			stats.IncompleteDates = append(stats.IncompleteDates, dateKey)
			continue
		}

		entries = append(entries, contracts.BatchEntry{
			Date: dateKey,
			URL:  formula.Encode(snap, g.formula),
		})

		g.logger.WithFields(map[string]interface{}{
			"date":    dateKey,
			"markers": len(snap.Entries),
		}).Debug("Generated entry")
	}

	stats.Generated = len(entries)

	return entries, stats
}

// cutoffDates returns the distinct measurement dates in the input,
// sorted ascending. Readings with malformed dates never get this far;
// ingestion drops them with a warning.
func cutoffDates(readings []contracts.Reading) []time.Time {
	seen := make(map[string]time.Time)
	for _, r := range readings {
		seen[r.DateKey()] = r.Date
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, seen[k])
	}

	return dates
}
