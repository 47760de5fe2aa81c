package formula

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/bloodage/internal/biomarker"
	"github.com/wonny/bloodage/internal/snapshot"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEncode_Bortz(t *testing.T) {
	snap := snapshot.Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]snapshot.Entry{
			"S-glucose": {Value: "95", Unit: "mg/dL", Date: date("2024-01-10")},
			"S-albumin": {Value: "4.2", Unit: "g/dL", Date: date("2024-01-10")},
			"age":       {Value: "65.5", Unit: "years", Date: date("2024-01-10")},
		},
	}

	got := Encode(snap, Bortz())

	want := BortzBaseURL +
		"S-albumin=4.2_g%2FdL" +
		"&S-glucose=95_mg%2FdL" +
		"&age=65.5_years"
	assert.Equal(t, want, got)
}

func TestEncode_BortzPercentUnitDoubleEscaped(t *testing.T) {
	snap := snapshot.Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]snapshot.Entry{
			"LYM": {Value: "32", Unit: "%", Date: date("2024-01-10")},
		},
	}

	got := Encode(snap, Bortz())

	// "%" normalizes to "%25", then the outer pass escapes the "%"
	// again. The calculator's decoder depends on the doubled escape.
	assert.Equal(t, BortzBaseURL+"LYM=32_%2525", got)
}

func TestEncode_BortzEscapesSpaces(t *testing.T) {
	snap := snapshot.Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]snapshot.Entry{
			"RBC": {Value: "4.8", Unit: "x10 6/uL", Date: date("2024-01-10")},
		},
	}

	got := Encode(snap, Bortz())

	// Spaces must become %20, never '+'.
	assert.Equal(t, BortzBaseURL+"RBC=4.8_x10%206%2FuL", got)
}

func TestEncode_Levine(t *testing.T) {
	snap := snapshot.Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]snapshot.Entry{
			"S-glucose": {Value: "95", Unit: "mg/dL", Date: date("2024-01-10")},
			"WBC":       {Value: "5.4", Unit: "x10^3/uL", Date: date("2024-01-10")},
			"age":       {Value: "65.5", Unit: "years", Date: date("2024-01-10")},
		},
	}

	got := Encode(snap, Levine())

	// Plain id=value pairs: no units, no escaping.
	want := LevineBaseURL + "S-glucose=95&WBC=5.4&age=65.5"
	assert.Equal(t, want, got)
}

func TestEncode_Deterministic(t *testing.T) {
	snap := snapshot.Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]snapshot.Entry{
			"S-glucose":    {Value: "95", Unit: "mg/dL"},
			"S-albumin":    {Value: "4.2", Unit: "g/dL"},
			"S-hsCRP":      {Value: "0.4", Unit: "mg/L"},
			"MCV":          {Value: "92", Unit: "fL"},
			"S-creatinine": {Value: "0.9", Unit: "mg/dL"},
			"age":          {Value: "65.5", Unit: "years"},
		},
	}

	first := Encode(snap, Bortz())
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Encode(snap, Bortz()),
			"identical snapshots must encode byte-identically")
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "95_mg/dL", want: "95_mg%2FdL"},
		{in: "a b", want: "a%20b"},
		{in: "65.5_years", want: "65.5_years"},
		{in: "4.2_g/dL", want: "4.2_g%2FdL"},
		{in: "x~y-z.0_", want: "x~y-z.0_"},
		{in: "100%", want: "100%25"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := percentEncode(tt.in); got != tt.want {
			t.Errorf("percentEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestByName(t *testing.T) {
	f, ok := ByName("bortz")
	require.True(t, ok)
	assert.Equal(t, "bortz", f.Name)
	assert.Empty(t, f.Required)

	f, ok = ByName("levine")
	require.True(t, ok)
	assert.Len(t, f.Required, 10)

	_, ok = ByName("phenoage")
	assert.False(t, ok)
}
