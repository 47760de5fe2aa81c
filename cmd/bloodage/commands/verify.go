package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/pkg/httputil"
	"github.com/wonny/bloodage/pkg/logger"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the calculator endpoints are reachable",
	Long: `Sends a rate-limited request to each calculator's base URL and
reports the response status. Useful before handing a freshly generated
batch to the URL processor. The result pages themselves are never
parsed here.

Example:
  go run ./cmd/bloodage verify`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	client := httputil.New(log, 15*time.Second).
		WithRateLimit(1, 1).
		WithRetry(2, 2*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	PrintHeader("Calculator endpoints")

	failures := 0
	for _, f := range formula.All() {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, f.BaseURL, nil)
		if err != nil {
			return fmt.Errorf("create request for %s: %w", f.Name, err)
		}

		resp, err := client.Do(req)
		if err != nil {
			PrintError(fmt.Sprintf("%-6s  unreachable: %v", f.Name, err))
			failures++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 400 {
			PrintWarning(fmt.Sprintf("%-6s  HTTP %d", f.Name, resp.StatusCode))
			failures++
			continue
		}

		PrintSuccess(fmt.Sprintf("%-6s  HTTP %d", f.Name, resp.StatusCode))
	}

	if failures > 0 {
		return fmt.Errorf("%d calculator endpoint(s) failed verification", failures)
	}

	return nil
}
