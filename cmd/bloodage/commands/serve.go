package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/bloodage/internal/api"
	"github.com/wonny/bloodage/internal/api/handlers"
	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/pkg/logger"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the batch history over HTTP",
	Long: `Starts the read-only HTTP API.

Endpoints:
  GET  /health
  GET  /api/history/{formula}   persisted batch entries
  GET  /api/markers/{formula}   canonical IDs and aliases
  POST /api/refresh             run an incremental update

Example:
  go run ./cmd/bloodage serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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

	handler := handlers.New(cfg, targets, log)
	server := api.New(cfg, log, api.NewRouter(handler, log))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
