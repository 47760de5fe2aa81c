package ingest

import (
	"path/filepath"
	"strings"

	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/pkg/logger"
)

// Read loads bloodwork readings from an export file, dispatching on the
// file extension: .html and .htm parse as an HTML lab report, anything
// else as CSV. Commands, jobs and handlers all ingest through here so
// both formats reach every entry point.
func Read(path string, log *logger.Logger) ([]contracts.Reading, *Stats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ReadHTML(path, log)
	default:
		return ReadCSV(path, log)
	}
}
