package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/bloodage/internal/biomarker"
)

func TestValidate(t *testing.T) {
	full := Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]Entry{
			"LYM": {Value: "32"}, "MCV": {Value: "92"}, "RDW": {Value: "13.1"},
			"S-ALP": {Value: "70"}, "S-albumin": {Value: "4.2"},
			"S-creatinine": {Value: "0.9"}, "S-glucose": {Value: "95"},
			"S-hsCRP": {Value: "0.4"}, "WBC": {Value: "5.4"},
			"age": {Value: "65.5"},
		},
	}

	ok, missing := Validate(full, biomarker.LevineRequired)
	assert.True(t, ok)
	assert.Empty(t, missing)
}

func TestValidate_SingleMissingIDFails(t *testing.T) {
	snap := Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]Entry{
			"LYM": {Value: "32"}, "MCV": {Value: "92"}, "RDW": {Value: "13.1"},
			"S-ALP": {Value: "70"}, "S-albumin": {Value: "4.2"},
			"S-creatinine": {Value: "0.9"}, "S-glucose": {Value: "95"},
			"S-hsCRP": {Value: "0.4"},
			"age":     {Value: "65.5"},
			// WBC absent
		},
	}

	ok, missing := Validate(snap, biomarker.LevineRequired)
	assert.False(t, ok)
	assert.Equal(t, []biomarker.ID{"WBC"}, missing)
}

func TestValidate_MissingSorted(t *testing.T) {
	snap := Snapshot{
		Cutoff: date("2024-01-10"),
		Entries: map[biomarker.ID]Entry{
			"S-glucose": {Value: "95"},
			"age":       {Value: "65.5"},
		},
	}

	ok, missing := Validate(snap, biomarker.LevineRequired)
	assert.False(t, ok)
	assert.Equal(t, []biomarker.ID{
		"LYM", "MCV", "RDW", "S-ALP", "S-albumin",
		"S-creatinine", "S-hsCRP", "WBC",
	}, missing)
}

func TestValidate_EmptyRequiredAlwaysPasses(t *testing.T) {
	snap := Snapshot{
		Cutoff:  date("2024-01-10"),
		Entries: map[biomarker.ID]Entry{"S-glucose": {Value: "95"}},
	}

	ok, missing := Validate(snap, nil)
	assert.True(t, ok)
	assert.Empty(t, missing)
}
