package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/batch"
	"github.com/wonny/bloodage/internal/ingest"
	"github.com/wonny/bloodage/pkg/logger"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [bortz|levine|both]",
	Short: "Generate calculator URLs for all historical dates",
	Long: `Rebuilds the full batch of calculator URLs from scratch.

For every unique measurement date in the bloodwork CSV, the latest
known value of each biomarker up to that date is snapshotted, checked
against the formula's requirements, and encoded into a calculator URL.
The result replaces the persisted batch file.

For incremental appends that keep existing history untouched, use
"bloodage update" instead.

Example:
  go run ./cmd/bloodage generate both
  go run ./cmd/bloodage generate levine --input new_bloodwork.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
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

	readings, stats, err := ingest.Read(cfg.Input.CSVPath, log)
	if err != nil {
		return err
	}
	if len(stats.BadDates) > 0 {
		PrintWarning(fmt.Sprintf("Skipped %d row(s) with invalid dates", len(stats.BadDates)))
	}

	targets, cleanup, err := openTargets(cfg, log, formulas)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	for _, t := range targets {
		PrintHeader(fmt.Sprintf("Generating %s batch", t.Formula.Name))

		gen := batch.NewGenerator(t.Formula, cfg.Birthdate, log)
		entries, genStats := gen.Generate(readings)

		if err := t.Store.Save(ctx, entries); err != nil {
			return fmt.Errorf("save %s batch: %w", t.Formula.Name, err)
		}

		PrintKeyValue("Cutoff dates", fmt.Sprintf("%d", genStats.CutoffDates), 16)
		PrintKeyValue("Generated", fmt.Sprintf("%d", genStats.Generated), 16)
		if len(genStats.IncompleteDates) > 0 {
			PrintKeyValue("Incomplete", fmt.Sprintf("%d", len(genStats.IncompleteDates)), 16)
		}
		if len(genStats.EmptyDates) > 0 {
			PrintKeyValue("Empty", fmt.Sprintf("%d", len(genStats.EmptyDates)), 16)
		}
		PrintSuccess(fmt.Sprintf("Saved %d %s URL(s)", len(entries), t.Formula.Name))
	}

	return nil
}
