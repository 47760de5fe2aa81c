package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_DispatchesCSV(t *testing.T) {
	path := writeFile(t, "bloodwork.csv",
		"Biomarker,Value,Unit,Measurement Date\nGlucose,95,mg/dL,2024-01-10\n")

	readings, stats, err := Read(path, testLogger())
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, 1, stats.Rows)
	assert.Equal(t, "Glucose", readings[0].Biomarker)
}

func TestRead_DispatchesHTML(t *testing.T) {
	html := `<table>
	  <tr><th>Biomarker</th><th>Value</th><th>Unit</th><th>Measurement Date</th></tr>
	  <tr><td>Albumin</td><td>4.2</td><td>g/dL</td><td>2024-01-10</td></tr>
	</table>`

	for _, name := range []string{"report.html", "report.htm", "REPORT.HTML"} {
		path := writeFile(t, name, html)

		readings, _, err := Read(path, testLogger())
		require.NoError(t, err, name)
		require.Len(t, readings, 1, name)
		assert.Equal(t, "Albumin", readings[0].Biomarker)
		assert.Equal(t, "2024-01-10", readings[0].DateKey())
	}
}

func TestRead_UnknownExtensionFallsBackToCSV(t *testing.T) {
	path := writeFile(t, "bloodwork.txt",
		"Biomarker,Value,Unit,Measurement Date\nWBC,5.4,x10^3/uL,2024-01-10\n")

	readings, _, err := Read(path, testLogger())
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "WBC", readings[0].Biomarker)
}
