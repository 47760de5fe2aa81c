package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/batch"
	"github.com/wonny/bloodage/internal/ingest"
	"github.com/wonny/bloodage/pkg/logger"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [bortz|levine|both]",
	Short: "Incrementally append new dates to the persisted batches",
	Long: `Processes only measurement dates not yet in the persisted batch
stores. Already-persisted dates are never recomputed or overwritten;
new dates are appended and the result re-sorted by date.

Running update twice in a row is a no-op the second time.

Example:
  go run ./cmd/bloodage update
  go run ./cmd/bloodage update levine
  go run ./cmd/bloodage update --input new_bloodwork.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	formulas, err := selectFormulas(arg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	readings, _, err := ingest.Read(cfg.Input.CSVPath, log)
	if err != nil {
		return err
	}

	targets, cleanup, err := openTargets(cfg, log, formulas)
	if err != nil {
		return err
	}
	defer cleanup()

	updater := batch.NewUpdater(cfg.Birthdate, log)
	results, err := updater.Run(context.Background(), readings, targets)
	if err != nil {
		return err
	}

	PrintHeader("Incremental update")
	for _, r := range results {
		if r.Added > 0 {
			PrintSuccess(fmt.Sprintf("%-6s  added %d new date(s), %d total", r.Formula, r.Added, r.Total))
		} else {
			PrintKeyValue(r.Formula, "already up to date", 8)
		}
	}

	fmt.Println()
	fmt.Println("Next: run the URL processor to extract scores for new dates.")

	return nil
}
