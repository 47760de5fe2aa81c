package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/pkg/logger"
)

// Target pairs a formula with its persisted batch store.
type Target struct {
	Formula formula.Formula
	Store   contracts.BatchStore
}

// UpdateResult summarizes one formula's incremental run.
type UpdateResult struct {
	Formula   string                   `json:"formula"`
	Persisted int                      `json:"persisted"` // entries before the merge
	Fresh     int                      `json:"fresh"`     // entries the generator produced
	Added     int                      `json:"added"`     // new dates appended
	Total     int                      `json:"total"`     // entries after the merge
	Stats     *contracts.GenerateStats `json:"stats"`
}

// Updater runs the incremental pipeline: load persisted history,
// regenerate from the full input, merge-append only the new dates, and
// save. The merge step is the sole writer of each store; one Run call
// performs load-merge-save as a single sequential pass per target.
type Updater struct {
	birthdate time.Time
	logger    *logger.Logger
}

// NewUpdater creates an updater for the configured birthdate.
func NewUpdater(birthdate time.Time, log *logger.Logger) *Updater {
	return &Updater{
		birthdate: birthdate,
		logger:    log,
	}
}

// Run updates every target from the given readings. A target whose
// store cannot be loaded aborts the run: proceeding could overwrite
// history with a partial set.
func (u *Updater) Run(ctx context.Context, readings []contracts.Reading, targets []Target) ([]UpdateResult, error) {
	results := make([]UpdateResult, 0, len(targets))

	for _, t := range targets {
		result, err := u.runOne(ctx, readings, t)
		if err != nil {
			return nil, fmt.Errorf("update %s: %w", t.Formula.Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}

func (u *Updater) runOne(ctx context.Context, readings []contracts.Reading, t Target) (UpdateResult, error) {
	log := u.logger.WithField("formula", t.Formula.Name)

	persisted, err := t.Store.Load(ctx)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("load persisted entries: %w", err)
	}
	log.WithField("existing", len(persisted)).Info("Loaded persisted entries")

	gen := NewGenerator(t.Formula, u.birthdate, u.logger)
	fresh, stats := gen.Generate(readings)

	added := NewDates(persisted, fresh)
	merged := Merge(persisted, fresh)

	if added > 0 {
		if err := t.Store.Save(ctx, merged); err != nil {
			return UpdateResult{}, fmt.Errorf("save merged entries: %w", err)
		}
		log.WithFields(map[string]interface{}{
			"added": added,
			"total": len(merged),
		}).Info("Appended new entries")
	} else {
		log.Info("No new dates, already up to date")
	}

	return UpdateResult{
		Formula:   t.Formula.Name,
		Persisted: len(persisted),
		Fresh:     len(fresh),
		Added:     added,
		Total:     len(merged),
		Stats:     stats,
	}, nil
}
