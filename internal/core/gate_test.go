package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microdrop-launcher/internal/types"
)

func TestEvaluateProfileSameMajorIsCompatible(t *testing.T) {
	decision := EvaluateProfile("1.3.2", "1.9.0")
	assert.Equal(t, types.ProfileCompatible, decision.Status)
	assert.Equal(t, "1.3.2", decision.MarkerVersion)
	assert.NoError(t, decision.Err)
}

func TestEvaluateProfileMajorMismatchIsIncompatible(t *testing.T) {
	decision := EvaluateProfile("2.0.0", "1.9.0")
	assert.Equal(t, types.ProfileIncompatible, decision.Status)
	require.Error(t, decision.Err)
	assert.True(t, types.IsVersionMismatch(decision.Err))
}

func TestEvaluateProfileMissingMarkerIsUnmarked(t *testing.T) {
	decision := EvaluateProfile("", "1.9.0")
	assert.Equal(t, types.ProfileUnmarked, decision.Status)
	assert.NoError(t, decision.Err)
}

func TestEvaluateProfileGarbageMarkerIsUnmarked(t *testing.T) {
	decision := EvaluateProfile("garbage", "1.9.0")
	assert.Equal(t, types.ProfileUnmarked, decision.Status)
}
