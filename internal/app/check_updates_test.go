package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/types"
)

func TestCheckUpdatesCachesLatestWithinMajor(t *testing.T) {
	manager := &stubManager{
		info: types.PackageVersionInfo{
			Installed: stringPtr("2.0.0"),
			Available: []string{"1.9.0", "2.0.0", "2.1.0", "3.0.0"},
		},
	}
	root := t.TempDir()
	env := stubEnv{installed: map[string]string{"microdrop": "2.0.0"}, root: root}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	result, err := svc.CheckUpdates(context.Background(), CheckUpdatesRequest{Package: "microdrop"})
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", result.Installed)
	assert.Equal(t, "2.1.0", result.Latest)
	assert.True(t, result.UpdateAvailable)
	assert.False(t, result.Ignored)

	cachePath := filepath.Join(root, "config", "2.0", adapters.CacheFileName)
	cached, err := adapters.NewVersionCacheAdapter(cachePath).Load()
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", cached.Version)
	assert.False(t, cached.Ignore)
}

func TestCheckUpdatesPreservesIgnoreForSameVersion(t *testing.T) {
	manager := &stubManager{
		info: types.PackageVersionInfo{
			Installed: stringPtr("2.0.0"),
			Available: []string{"2.0.0", "2.1.0"},
		},
	}
	root := t.TempDir()
	env := stubEnv{installed: map[string]string{"microdrop": "2.0.0"}, root: root}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	cachePath := filepath.Join(root, "config", "2.0", adapters.CacheFileName)
	cache := adapters.NewVersionCacheAdapter(cachePath)
	require.NoError(t, cache.Save(types.CachedVersion{Version: "2.1.0", Ignore: true}))

	result, err := svc.CheckUpdates(context.Background(), CheckUpdatesRequest{Package: "microdrop"})
	require.NoError(t, err)
	assert.True(t, result.Ignored)

	cached, err := cache.Load()
	require.NoError(t, err)
	assert.True(t, cached.Ignore)
}

func TestCheckUpdatesNewerReleaseResetsIgnore(t *testing.T) {
	manager := &stubManager{
		info: types.PackageVersionInfo{
			Installed: stringPtr("2.0.0"),
			Available: []string{"2.0.0", "2.1.0", "2.2.0"},
		},
	}
	root := t.TempDir()
	env := stubEnv{installed: map[string]string{"microdrop": "2.0.0"}, root: root}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	cachePath := filepath.Join(root, "config", "2.0", adapters.CacheFileName)
	cache := adapters.NewVersionCacheAdapter(cachePath)
	require.NoError(t, cache.Save(types.CachedVersion{Version: "2.1.0", Ignore: true}))

	result, err := svc.CheckUpdates(context.Background(), CheckUpdatesRequest{Package: "microdrop"})
	require.NoError(t, err)
	assert.Equal(t, "2.2.0", result.Latest)
	assert.False(t, result.Ignored)

	cached, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "2.2.0", cached.Version)
	assert.False(t, cached.Ignore)
}

func TestCheckUpdatesUpToDate(t *testing.T) {
	manager := &stubManager{
		info: types.PackageVersionInfo{
			Installed: stringPtr("2.1.0"),
			Available: []string{"2.0.0", "2.1.0"},
		},
	}
	env := stubEnv{installed: map[string]string{"microdrop": "2.1.0"}, root: t.TempDir()}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	result, err := svc.CheckUpdates(context.Background(), CheckUpdatesRequest{Package: "microdrop"})
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", result.Latest)
	assert.False(t, result.UpdateAvailable)
}
