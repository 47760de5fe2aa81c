package ingest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/bloodage/internal/contracts"
	"github.com/wonny/bloodage/pkg/logger"
)

// ReadHTML loads readings from an HTML lab-report export. Rows are
// taken from the first table whose cells line up as
// biomarker / value / unit / date; header rows (th cells) are skipped.
func ReadHTML(path string, log *logger.Logger) ([]contracts.Reading, *Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	readings, stats, err := parseHTML(f, log)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.WithFields(map[string]interface{}{
		"path": path,
		"rows": stats.Rows,
	}).Info("Loaded bloodwork HTML report")

	return readings, stats, nil
}

func parseHTML(r io.Reader, log *logger.Logger) ([]contracts.Reading, *Stats, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse document: %w", err)
	}

	stats := &Stats{}
	var readings []contracts.Reading

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			if row.Find("th").Length() == 0 {
				stats.ShortRows++
			}
			return
		}

		rawDate := cellText(cells, 3)
		date, err := time.Parse(contracts.DateLayout, rawDate)
		if err != nil {
			log.WithField("date", rawDate).Warn("Invalid date format, skipping row")
			stats.BadDates = append(stats.BadDates, rawDate)
			return
		}

		readings = append(readings, contracts.Reading{
			Biomarker: cellText(cells, 0),
			Value:     cellText(cells, 1),
			Unit:      cellText(cells, 2),
			Date:      date,
			Row:       len(readings),
		})
	})

	stats.Rows = len(readings)

	return readings, stats, nil
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
