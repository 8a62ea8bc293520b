package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/types"
)

func TestProfileStoreLoadMissingFile(t *testing.T) {
	store := NewProfileStoreAdapter()
	records, err := store.Load(filepath.Join(t.TempDir(), "profiles.yml"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProfileStoreLoadOrdersMostRecentFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yml")
	content := `- path: /a
  used_timestamp: "2024-01-01T00:00:00Z"
- path: /b
  used_timestamp: "2024-02-01T00:00:00Z"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewProfileStoreAdapter()
	records, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/b", records[0].Path)
	assert.Equal(t, "/a", records[1].Path)
}

func TestProfileStoreLoadPythonEraTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yml")
	content := `- path: /legacy
  used_timestamp: "2017-03-14 09:26:53.589793"
- path: /never
  used_timestamp: null
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewProfileStoreAdapter()
	records, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/legacy", records[0].Path)
	require.NotNil(t, records[0].Used)
	assert.Nil(t, records[1].Used)
}

func TestProfileStoreRoundTripCollapsesDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yml")
	used := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []types.ProfileRecord{
		{Path: "/a", Used: &older},
		{Path: "/b", Used: &used},
		{Path: "/a", Used: &older},
	}

	store := NewProfileStoreAdapter()
	require.NoError(t, store.Save(path, records))
	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "/b", loaded[0].Path)
	assert.Equal(t, "/a", loaded[1].Path)

	// A second round trip is stable.
	require.NoError(t, store.Save(path, loaded))
	reloaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}

func TestProfileStoreSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "profiles.yml")
	store := NewProfileStoreAdapter()
	require.NoError(t, store.Save(path, []types.ProfileRecord{{Path: "/a"}}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestProfileStoreLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))
	store := NewProfileStoreAdapter()
	_, err := store.Load(path)
	require.Error(t, err)
}
