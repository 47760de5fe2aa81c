package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/internal/scheduler"
	"github.com/wonny/bloodage/internal/scheduler/jobs"
	"github.com/wonny/bloodage/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the incremental refresh on a cron schedule",
	Long: `Starts the scheduler and runs the incremental batch refresh on
the configured cron schedule (REFRESH_SCHEDULE, default 06:00 daily).

Example:
  go run ./cmd/bloodage scheduler`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	targets, cleanup, err := openTargets(cfg, log, formula.All())
	if err != nil {
		return err
	}
	defer cleanup()

	job := jobs.NewRefreshJob(cfg, targets, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.WithField("signal", sig.String()).Info("Shutdown signal received")

	printRunSummary(job.Name(), sched.History(job.Name()))

	return nil
}

// printRunSummary reports what the scheduler actually ran before shutdown.
func printRunSummary(jobName string, results []scheduler.JobResult) {
	PrintHeader(fmt.Sprintf("Run summary: %s", jobName))

	if len(results) == 0 {
		PrintKeyValue("Runs", "0", 10)
		return
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	last := results[len(results)-1]

	PrintKeyValue("Runs", fmt.Sprintf("%d", len(results)), 10)
	PrintKeyValue("Succeeded", fmt.Sprintf("%d", succeeded), 10)
	PrintKeyValue("Last run", last.EndTime.Format("2006-01-02 15:04:05"), 10)
	if last.Error != "" {
		PrintError(last.Error)
	}
}
