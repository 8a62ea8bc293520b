package core

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/types"
)

func stamp(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestNormalizeRegistryOrdersMostRecentFirst(t *testing.T) {
	records := []types.ProfileRecord{
		{Path: "/a", Used: stamp(t, "2024-01-01")},
		{Path: "/b", Used: stamp(t, "2024-02-01")},
	}
	normalized := NormalizeRegistry(records)
	require.Len(t, normalized, 2)
	assert.Equal(t, "/b", normalized[0].Path)
	assert.Equal(t, "/a", normalized[1].Path)
}

func TestNormalizeRegistryCollapsesDuplicatesFirstWins(t *testing.T) {
	records := []types.ProfileRecord{
		{Path: "/a", Used: stamp(t, "2024-03-01")},
		{Path: "/a", Used: stamp(t, "2024-01-01")},
		{Path: "/b"},
	}
	normalized := NormalizeRegistry(records)
	require.Len(t, normalized, 2)
	assert.Equal(t, "/a", normalized[0].Path)
	assert.Equal(t, stamp(t, "2024-03-01"), normalized[0].Used)
	assert.Equal(t, "/b", normalized[1].Path)
}

func TestNormalizeRegistryUnusedSortLast(t *testing.T) {
	records := []types.ProfileRecord{
		{Path: "/never-used"},
		{Path: "/used", Used: stamp(t, "2024-01-01")},
	}
	normalized := NormalizeRegistry(records)
	assert.Equal(t, "/used", normalized[0].Path)
	assert.Equal(t, "/never-used", normalized[1].Path)
}

func TestAddProfileDeduplicates(t *testing.T) {
	records := []types.ProfileRecord{{Path: "/a", Used: stamp(t, "2024-01-01")}}
	added := AddProfile(records, "/a")
	require.Len(t, added, 1)

	added = AddProfile(records, "/b")
	require.Len(t, added, 2)
	assert.Equal(t, "/b", added[1].Path)
	assert.Nil(t, added[1].Used)
}

func TestRemoveProfile(t *testing.T) {
	records := []types.ProfileRecord{{Path: "/a"}, {Path: "/b"}}
	removed := RemoveProfile(records, "/a")
	require.Len(t, removed, 1)
	assert.Equal(t, "/b", removed[0].Path)
}

func TestTouchProfileMovesRecordToFront(t *testing.T) {
	records := []types.ProfileRecord{
		{Path: "/b", Used: stamp(t, "2024-02-01")},
		{Path: "/a", Used: stamp(t, "2024-01-01")},
	}
	touched := TouchProfile(records, "/a", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, touched, 2)
	assert.Equal(t, "/a", touched[0].Path)
	assert.Equal(t, "/b", touched[1].Path)

	// Input slice must not be mutated.
	if diff := cmp.Diff("/b", records[0].Path); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
	assert.Equal(t, stamp(t, "2024-01-01"), records[1].Used)
}
