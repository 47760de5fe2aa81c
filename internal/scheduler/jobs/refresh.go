package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/bloodage/internal/batch"
	"github.com/wonny/bloodage/internal/ingest"
	"github.com/wonny/bloodage/pkg/config"
	"github.com/wonny/bloodage/pkg/logger"
)

// RefreshJob re-runs the incremental update on a schedule, picking up
// measurement dates that arrived in the CSV since the last run.
type RefreshJob struct {
	cfg      *config.Config
	targets  []batch.Target
	schedule string
	logger   *logger.Logger
}

// NewRefreshJob creates an incremental refresh job over the given
// formula targets.
func NewRefreshJob(cfg *config.Config, targets []batch.Target, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		cfg:      cfg,
		targets:  targets,
		schedule: cfg.RefreshSchedule,
		logger:   log,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "batch_refresh"
}

// Schedule returns the configured cron schedule
func (j *RefreshJob) Schedule() string {
	return j.schedule
}

// Run executes one incremental update over all targets.
func (j *RefreshJob) Run(ctx context.Context) error {
	readings, _, err := ingest.Read(j.cfg.Input.CSVPath, j.logger)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	updater := batch.NewUpdater(j.cfg.Birthdate, j.logger)
	results, err := updater.Run(ctx, readings, j.targets)
	if err != nil {
		return err
	}

	for _, r := range results {
		j.logger.WithFields(map[string]interface{}{
			"formula": r.Formula,
			"added":   r.Added,
			"total":   r.Total,
		}).Info("Refresh finished")
	}

	return nil
}
