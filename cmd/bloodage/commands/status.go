package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/internal/ingest"
	"github.com/wonny/bloodage/pkg/logger"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compare CSV dates against the persisted batches",
	Long: `Shows, per formula, how many measurement dates exist in the
bloodwork CSV, how many are already persisted, and which dates an
incremental update would pick up.

Example:
  go run ./cmd/bloodage status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	readings, _, err := ingest.Read(cfg.Input.CSVPath, log)
	if err != nil {
		return err
	}

	csvDates := make(map[string]bool)
	for _, r := range readings {
		csvDates[r.DateKey()] = true
	}

	targets, cleanup, err := openTargets(cfg, log, formula.All())
	if err != nil {
		return err
	}
	defer cleanup()

	PrintHeader("Batch status")
	PrintKeyValue("Input", cfg.Input.CSVPath, 10)
	PrintKeyValue("CSV dates", fmt.Sprintf("%d", len(csvDates)), 10)
	fmt.Println()

	ctx := context.Background()

	for _, t := range targets {
		persisted, err := storeDates(ctx, t.Store)
		if err != nil {
			return fmt.Errorf("load %s store: %w", t.Formula.Name, err)
		}

		var pending []string
		for d := range csvDates {
			if !persisted[d] {
				pending = append(pending, d)
			}
		}
		sort.Strings(pending)

		PrintSeparator()
		PrintKeyValue("Formula", t.Formula.Name, 10)
		PrintKeyValue("Persisted", fmt.Sprintf("%d", len(persisted)), 10)
		PrintKeyValue("Pending", fmt.Sprintf("%d", len(pending)), 10)
		if len(pending) > 0 {
			PrintList(pending)
		}
	}

	return nil
}
