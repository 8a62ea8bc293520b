package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorVersion(t *testing.T) {
	major, err := MajorVersion("2.1.0")
	require.NoError(t, err)
	assert.Equal(t, 2, major)

	major, err = MajorVersion("10.0.post3")
	require.NoError(t, err)
	assert.Equal(t, 10, major)

	_, err = MajorVersion("not-a-version")
	require.Error(t, err)

	_, err = MajorVersion("")
	require.Error(t, err)
}

func TestSameMajor(t *testing.T) {
	same, err := SameMajor("1.3.2", "1.9.0")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = SameMajor("2.0.0", "1.9.0")
	require.NoError(t, err)
	assert.False(t, same)
}

func TestSortVersions(t *testing.T) {
	sorted := SortVersions([]string{"2.0.0", "1.9.0", "1.10.0"})
	assert.Equal(t, []string{"1.9.0", "1.10.0", "2.0.0"}, sorted)
}

func TestSortVersionsKeepsInputUntouched(t *testing.T) {
	input := []string{"2.0.0", "1.0.0"}
	_ = SortVersions(input)
	assert.Equal(t, []string{"2.0.0", "1.0.0"}, input)
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, -1, CompareVersions("1.9.0", "1.10.0"))
	assert.Equal(t, 1, CompareVersions("2.0.0", "1.9.9"))
	assert.Equal(t, 0, CompareVersions("1.2.3", "1.2.3"))
}
