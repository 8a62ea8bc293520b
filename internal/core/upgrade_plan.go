package core

import (
	"microdrop-launcher/internal/types"
)

// UpgradeTarget selects the version an upgrade should install from a
// package's version info. With matchMajor set, only versions sharing
// the installed version's major component are considered; the installed
// major version is taken from info.Installed, which must be non-nil.
//
// Returns ("", false) when no candidate exists, and (installed, true)
// when the best candidate equals the installed version (a no-op
// upgrade).
func UpgradeTarget(info types.PackageVersionInfo, matchMajor bool) (string, bool) {
	candidates := info.Available
	if matchMajor && info.Installed != nil {
		installedMajor, err := MajorVersion(*info.Installed)
		if err != nil {
			return "", false
		}
		var matched []string
		for _, version := range candidates {
			major, err := MajorVersion(version)
			if err != nil {
				continue
			}
			if major == installedMajor {
				matched = append(matched, version)
			}
		}
		candidates = matched
	}
	if len(candidates) == 0 {
		return "", false
	}
	// Available is expected ascending; sort before taking the last
	// element in case the channel listing interleaves versions.
	sorted := SortVersions(candidates)
	return sorted[len(sorted)-1], true
}
