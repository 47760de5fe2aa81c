package commands

import (
	"context"
	"fmt"

	"github.com/wonny/bloodage/internal/batch"
	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/internal/store"
	"github.com/wonny/bloodage/pkg/config"
	"github.com/wonny/bloodage/pkg/database"
	"github.com/wonny/bloodage/pkg/logger"
)

// loadConfig loads configuration and applies CLI flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if inputFile != "" {
		cfg.Input.CSVPath = inputFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}

// openTargets builds the formula/store pairs from config. When
// DATABASE_URL is set entries persist to PostgreSQL, otherwise to the
// per-formula JSON files. The returned cleanup func closes any pool.
func openTargets(cfg *config.Config, log *logger.Logger, formulas []formula.Formula) ([]batch.Target, func(), error) {
	cleanup := func() {}

	if !cfg.UsesDatabase() {
		targets := make([]batch.Target, 0, len(formulas))
		for _, f := range formulas {
			targets = append(targets, batch.Target{
				Formula: f,
				Store:   store.NewJSONStore(jsonPath(cfg, f)),
			})
		}
		return targets, cleanup, nil
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("connect database: %w", err)
	}
	cleanup = db.Close

	if err := store.InitSchema(context.Background(), db.Pool); err != nil {
		cleanup()
		return nil, func() {}, err
	}

	targets := make([]batch.Target, 0, len(formulas))
	for _, f := range formulas {
		targets = append(targets, batch.Target{
			Formula: f,
			Store:   store.NewPostgresStore(db.Pool, f.Name),
		})
	}

	return targets, cleanup, nil
}

func jsonPath(cfg *config.Config, f formula.Formula) string {
	if f.Name == "levine" {
		return cfg.Store.LevineFile
	}
	return cfg.Store.BortzFile
}

// selectFormulas resolves a formula argument (bortz|levine|both).
func selectFormulas(arg string) ([]formula.Formula, error) {
	switch arg {
	case "", "both":
		return formula.All(), nil
	default:
		f, ok := formula.ByName(arg)
		if !ok {
			return nil, fmt.Errorf("unknown formula: %s (valid: bortz, levine, both)", arg)
		}
		return []formula.Formula{f}, nil
	}
}

// storeDates collects the persisted date set for a target.
func storeDates(ctx context.Context, s contracts.BatchStore) (map[string]bool, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]bool, len(entries))
	for _, e := range entries {
		dates[e.Date] = true
	}

	return dates, nil
}
