package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/pkg/logger"
)

// Expected CSV column headers.
const (
	colBiomarker = "Biomarker"
	colValue     = "Value"
	colUnit      = "Unit"
	colDate      = "Measurement Date"
)

// Stats carries per-file ingestion diagnostics.
type Stats struct {
	Rows      int      // readings returned
	BadDates  []string // raw date strings that failed to parse
	ShortRows int      // rows with too few columns
}

// ReadCSV loads bloodwork readings from a CSV export. A missing
// required column is fatal for the batch; a row with a malformed date
// is dropped with a warning so the date never enters the cutoff set.
func ReadCSV(path string, log *logger.Logger) ([]contracts.Reading, *Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	readings, stats, err := parseCSV(f, log)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.WithFields(map[string]interface{}{
		"path": path,
		"rows": stats.Rows,
	}).Info("Loaded bloodwork CSV")

	return readings, stats, nil
}

func parseCSV(r io.Reader, log *logger.Logger) ([]contracts.Reading, *Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length validated below

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, nil, err
	}
	width := maxIndex(cols) + 1

	stats := &Stats{}
	var readings []contracts.Reading

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) < width {
			stats.ShortRows++
			continue
		}

		rawDate := strings.TrimSpace(record[cols[colDate]])
		date, err := time.Parse(contracts.DateLayout, rawDate)
		if err != nil {
			log.WithField("date", rawDate).Warn("Invalid date format, skipping row")
			stats.BadDates = append(stats.BadDates, rawDate)
			continue
		}

		readings = append(readings, contracts.Reading{
			Biomarker: strings.TrimSpace(record[cols[colBiomarker]]),
			Value:     strings.TrimSpace(record[cols[colValue]]),
			Unit:      strings.TrimSpace(record[cols[colUnit]]),
			Date:      date,
			Row:       len(readings),
		})
	}

	stats.Rows = len(readings)

	return readings, stats, nil
}

// locateColumns maps required header names to indexes. Header cells
// are whitespace-trimmed before matching, mirroring exports that pad
// column names.
func locateColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, 4)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colBiomarker, colValue, colUnit, colDate} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	return cols, nil
}

func maxIndex(cols map[string]int) int {
	max := 0
	for _, i := range cols {
		if i > max {
			max = i
		}
	}
	return max
}
