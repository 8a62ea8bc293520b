package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/types"
)

func TestResolveVersionInfoNothingInstalledNothingAvailable(t *testing.T) {
	manager := &stubManager{info: types.PackageVersionInfo{}}
	env := stubEnv{root: t.TempDir()}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	info, err := svc.ResolveVersionInfo(context.Background(), ResolveVersionRequest{Package: "microdrop"})
	require.NoError(t, err)
	assert.Nil(t, info.Installed)
	assert.Empty(t, info.Available)
}

func TestResolveVersionInfoFallsBackToListQuery(t *testing.T) {
	manager := &stubManager{
		info:   types.PackageVersionInfo{Available: []string{"2.0.0"}},
		listed: map[string]string{"microdrop": "2.0.0"},
	}
	env := stubEnv{root: t.TempDir()}
	svc := newTestService(t, manager, env, &stubPrompter{}, &stubRunner{})

	info, err := svc.ResolveVersionInfo(context.Background(), ResolveVersionRequest{Package: "microdrop"})
	require.NoError(t, err)
	require.NotNil(t, info.Installed)
	assert.Equal(t, "2.0.0", *info.Installed)
}

func TestResolveVersionInfoRequiresPackage(t *testing.T) {
	svc := newTestService(t, &stubManager{}, stubEnv{root: t.TempDir()}, &stubPrompter{}, &stubRunner{})
	_, err := svc.ResolveVersionInfo(context.Background(), ResolveVersionRequest{})
	require.Error(t, err)
}

func TestResolveVersionInfoPropagatesQueryFailure(t *testing.T) {
	manager := &stubManager{searchErr: types.NewQueryFailed(assert.AnError)}
	svc := newTestService(t, manager, stubEnv{root: t.TempDir()}, &stubPrompter{}, &stubRunner{})

	_, err := svc.ResolveVersionInfo(context.Background(), ResolveVersionRequest{Package: "microdrop"})
	require.Error(t, err)
	assert.True(t, types.IsQueryFailed(err))
}
