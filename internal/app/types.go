package app

import "microdrop-launcher/internal/types"

// ResolveVersionRequest asks for the installed and available versions
// of a package.
type ResolveVersionRequest struct {
	Package string
}

// UpgradeRequest asks to upgrade a package to the newest available
// version.
type UpgradeRequest struct {
	Package string

	// MatchMajor restricts candidate versions to the installed major
	// version.
	MatchMajor bool
}

// CheckUpdatesRequest refreshes the latest-version cache for a package.
type CheckUpdatesRequest struct {
	Package string
}

// CheckUpdatesResult reports the outcome of a cache refresh.
type CheckUpdatesResult struct {
	Installed string
	Latest    string

	// UpdateAvailable is set when Latest is newer than Installed.
	UpdateAvailable bool

	// Ignored is set when the user previously chose to ignore Latest.
	Ignored bool
}

// LoadProfilesRequest reads the profile registry, pruning entries whose
// directories no longer exist and synthesizing a default profile when
// the registry is empty.
type LoadProfilesRequest struct {
	// Path locates the registry file; "" resolves to the default
	// location under the version-scoped config directory.
	Path string
}

// LoadProfilesResult carries the usable registry along with the
// resolved registry path and installed version, which later operations
// in the same session reuse.
type LoadProfilesResult struct {
	Records      []types.ProfileRecord
	RegistryPath string
	Installed    string
}

// CreateProfileRequest scaffolds a new profile directory and registers
// it.
type CreateProfileRequest struct {
	Path      string
	Overwrite bool

	// RegistryPath locates the registry file, "" for the default.
	RegistryPath string
}

// ImportProfileRequest registers an existing profile directory after
// checking it against the installed version.
type ImportProfileRequest struct {
	Path         string
	RegistryPath string
}

// RemoveProfileRequest removes a profile from the registry and
// optionally deletes its directory.
type RemoveProfileRequest struct {
	Path         string
	RegistryPath string

	// DeleteData removes the profile directory from disk as well.
	DeleteData bool
}

// LaunchRequest starts the application with one profile.
type LaunchRequest struct {
	ProfilePath string
}

// RunRequest drives the full launcher session: optional self-upgrade,
// update check, profile selection, and the launch loop.
type RunRequest struct {
	// ProfilesPath locates the registry file, "" for the default.
	ProfilesPath string

	// Default launches the most recently used profile without asking.
	Default bool

	// NoAuto forces the profile selection prompt even when only one
	// profile is registered.
	NoAuto bool

	// NoUpgrade skips the launcher self-upgrade and the update check.
	NoUpgrade bool
}
