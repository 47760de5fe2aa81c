package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/bloodage/internal/contracts"
)

func TestJSONStore_Roundtrip(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "batch_urls.json"))
	ctx := context.Background()

	entries := []contracts.BatchEntry{
		{Date: "2024-01-10", URL: "https://example.com/a"},
		{Date: "2024-02-15", URL: "https://example.com/b"},
	}

	require.NoError(t, st.Save(ctx, entries))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestJSONStore_MissingFileIsEmptyHistory(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "batch_urls.json"))

	loaded, err := st.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestJSONStore_CorruptFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch_urls.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewJSONStore(path).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestJSONStore_SaveOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	st := NewJSONStore(filepath.Join(dir, "batch_urls.json"))
	ctx := context.Background()

	first := []contracts.BatchEntry{{Date: "2024-01-10", URL: "a"}}
	second := []contracts.BatchEntry{
		{Date: "2024-01-10", URL: "a"},
		{Date: "2024-02-15", URL: "b"},
	}

	require.NoError(t, st.Save(ctx, first))
	require.NoError(t, st.Save(ctx, second))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)

	// No temp files left behind.
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "batch_urls.json", files[0].Name())
}

func TestJSONStore_EmptySetRoundtrip(t *testing.T) {
	st := NewJSONStore(filepath.Join(t.TempDir(), "batch_urls.json"))
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, []contracts.BatchEntry{}))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
