package core

import (
	"microdrop-launcher/internal/types"
)

// GateDecision is the outcome of evaluating one profile against the
// installed application version. It is a pure value: confirmation
// prompts and marker writes are performed by the caller.
type GateDecision struct {
	Status types.ProfileStatus

	// MarkerVersion is the version read from the profile's marker
	// file, empty for unmarked profiles.
	MarkerVersion string

	// Err carries the version-mismatch error for incompatible
	// profiles.
	Err error
}

// EvaluateProfile classifies a profile's recorded version against the
// installed application version.
//
// markerVersion is the first line of the profile's RELEASE-VERSION
// file, or "" when the file is absent:
//
//   - absent marker        -> ProfileUnmarked; the caller must obtain
//     confirmation and write the installed version before launching.
//   - major versions match -> ProfileCompatible.
//   - major versions differ-> ProfileIncompatible with a
//     VersionMismatch error.
func EvaluateProfile(markerVersion string, installedVersion string) GateDecision {
	if markerVersion == "" {
		return GateDecision{Status: types.ProfileUnmarked}
	}
	same, err := SameMajor(markerVersion, installedVersion)
	if err != nil {
		// Unparseable marker contents are treated the same as a
		// missing marker: the profile needs re-confirmation.
		return GateDecision{Status: types.ProfileUnmarked}
	}
	if !same {
		return GateDecision{
			Status:        types.ProfileIncompatible,
			MarkerVersion: markerVersion,
			Err:           types.NewVersionMismatch(markerVersion, installedVersion),
		}
	}
	return GateDecision{
		Status:        types.ProfileCompatible,
		MarkerVersion: markerVersion,
	}
}
