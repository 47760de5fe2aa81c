package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/bloodage/internal/contracts"
)

func entry(date, url string) contracts.BatchEntry {
	return contracts.BatchEntry{Date: date, URL: url}
}

func TestMerge_AppendsNewDatesOnly(t *testing.T) {
	persisted := []contracts.BatchEntry{
		entry("2024-01-10", "url-a"),
		entry("2024-02-15", "url-b"),
	}
	fresh := []contracts.BatchEntry{
		entry("2024-01-10", "url-a"),
		entry("2024-02-15", "url-b"),
		entry("2024-03-20", "url-c"),
	}

	merged := Merge(persisted, fresh)

	assert.Equal(t, []contracts.BatchEntry{
		entry("2024-01-10", "url-a"),
		entry("2024-02-15", "url-b"),
		entry("2024-03-20", "url-c"),
	}, merged)
}

func TestMerge_PersistedWinsOverFresh(t *testing.T) {
	persisted := []contracts.BatchEntry{entry("2024-01-10", "original")}
	fresh := []contracts.BatchEntry{entry("2024-01-10", "recomputed")}

	merged := Merge(persisted, fresh)

	assert.Equal(t, []contracts.BatchEntry{entry("2024-01-10", "original")}, merged)
}

func TestMerge_Idempotent(t *testing.T) {
	persisted := []contracts.BatchEntry{entry("2024-01-10", "url-a")}
	fresh := []contracts.BatchEntry{
		entry("2024-02-15", "url-b"),
		entry("2024-03-20", "url-c"),
	}

	once := Merge(persisted, fresh)
	twice := Merge(once, fresh)

	assert.Equal(t, once, twice)
}

func TestMerge_SortsByDate(t *testing.T) {
	persisted := []contracts.BatchEntry{entry("2024-03-20", "url-c")}
	fresh := []contracts.BatchEntry{
		entry("2024-01-10", "url-a"),
		entry("2023-12-01", "url-z"),
	}

	merged := Merge(persisted, fresh)

	assert.Equal(t, []contracts.BatchEntry{
		entry("2023-12-01", "url-z"),
		entry("2024-01-10", "url-a"),
		entry("2024-03-20", "url-c"),
	}, merged)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	persisted := []contracts.BatchEntry{entry("2024-02-15", "url-b")}
	fresh := []contracts.BatchEntry{entry("2024-01-10", "url-a")}

	Merge(persisted, fresh)

	assert.Equal(t, []contracts.BatchEntry{entry("2024-02-15", "url-b")}, persisted)
	assert.Equal(t, []contracts.BatchEntry{entry("2024-01-10", "url-a")}, fresh)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))

	fresh := []contracts.BatchEntry{entry("2024-01-10", "url-a")}
	assert.Equal(t, fresh, Merge(nil, fresh))

	persisted := []contracts.BatchEntry{entry("2024-01-10", "url-a")}
	assert.Equal(t, persisted, Merge(persisted, nil))
}

func TestNewDates(t *testing.T) {
	persisted := []contracts.BatchEntry{
		entry("2024-01-10", "url-a"),
		entry("2024-02-15", "url-b"),
	}
	fresh := []contracts.BatchEntry{
		entry("2024-01-10", "recomputed"),
		entry("2024-03-20", "url-c"),
		entry("2024-04-25", "url-d"),
	}

	assert.Equal(t, 2, NewDates(persisted, fresh))
	assert.Equal(t, 0, NewDates(persisted, persisted))
	assert.Equal(t, 3, NewDates(nil, fresh))
}
