package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	inputFile string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bloodage",
	Short: "Bloodwork biological-age batch pipeline",
	Long: `bloodage - bloodwork biological-age batch pipeline

Reconstructs, for every date a lab reading arrived, the latest known
value of each tracked biomarker and encodes the snapshot into Bortz
Blood Age and Levine PhenoAge calculator URLs.

Usage:
  go run ./cmd/bloodage [command]

Examples:
  go run ./cmd/bloodage generate both
  go run ./cmd/bloodage update
  go run ./cmd/bloodage status
  go run ./cmd/bloodage serve`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&inputFile, "input", "", "bloodwork CSV or HTML report path (overrides BLOODWORK_CSV)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
