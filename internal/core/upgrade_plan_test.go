package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/types"
)

func strptr(value string) *string { return &value }

func TestUpgradeTargetPicksGlobalLatest(t *testing.T) {
	info := types.PackageVersionInfo{
		Package:   "microdrop",
		Installed: strptr("1.9.0"),
		Available: []string{"1.9.0", "1.10.0", "2.0.0"},
	}
	target, ok := UpgradeTarget(info, false)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", target)
}

func TestUpgradeTargetMatchMajorFiltersCandidates(t *testing.T) {
	info := types.PackageVersionInfo{
		Package:   "microdrop",
		Installed: strptr("1.9.0"),
		Available: []string{"1.9.0", "1.10.0", "2.0.0"},
	}
	target, ok := UpgradeTarget(info, true)
	require.True(t, ok)
	assert.Equal(t, "1.10.0", target)
}

func TestUpgradeTargetNoCandidates(t *testing.T) {
	info := types.PackageVersionInfo{Package: "microdrop", Installed: strptr("3.0.0")}
	_, ok := UpgradeTarget(info, false)
	assert.False(t, ok)
}

func TestUpgradeTargetNoOpWhenInstalledIsLatest(t *testing.T) {
	info := types.PackageVersionInfo{
		Package:   "microdrop",
		Installed: strptr("2.0.0"),
		Available: []string{"1.9.0", "2.0.0"},
	}
	target, ok := UpgradeTarget(info, false)
	require.True(t, ok)
	assert.Equal(t, "2.0.0", target)
}

func TestUpgradeTargetReordersOutOfOrderListing(t *testing.T) {
	info := types.PackageVersionInfo{
		Package:   "microdrop",
		Installed: strptr("1.0.0"),
		Available: []string{"1.2.0", "1.10.0", "1.9.0"},
	}
	target, ok := UpgradeTarget(info, true)
	require.True(t, ok)
	assert.Equal(t, "1.10.0", target)
}
