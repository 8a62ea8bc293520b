package types

// PackageVersionInfo describes what a package manager knows about one
// package: the installed version (if any) and every version available
// on the configured channels.
type PackageVersionInfo struct {
	// Package is the queried package name.
	Package string

	// Installed is the installed version, or nil when the package is
	// not installed.
	Installed *string

	// Available lists versions in the order reported by the package
	// manager, ascending. The latest version is the last element.
	Available []string
}

// InstalledVersion returns the installed version string, or "" when the
// package is not installed.
func (i PackageVersionInfo) InstalledVersion() string {
	if i.Installed == nil {
		return ""
	}
	return *i.Installed
}

// InstalledDependency is one package pulled in alongside an upgrade.
type InstalledDependency struct {
	Package string `yaml:"package"`
	Version string `yaml:"version"`
}

// UpgradeResult summarizes one upgrade attempt.
//
// NewVersion is nil when no upgrade occurred: the package was already at
// the target version, or the install output reported nothing new.
type UpgradeResult struct {
	Package               string
	OriginalVersion       *string
	NewVersion            *string
	InstalledDependencies []InstalledDependency
}

// Upgraded reports whether the attempt actually installed a new version.
func (r UpgradeResult) Upgraded() bool {
	return r.NewVersion != nil
}

// InstallSummary is the parsed outcome of a package manager install
// invocation's output.
type InstallSummary struct {
	// AlreadyInstalled is set when the output contains the package
	// manager's "all requested packages already installed" marker.
	AlreadyInstalled bool

	// Packages lists every newly installed package with its version,
	// in output order. Empty when AlreadyInstalled is set or when the
	// output could not be parsed.
	Packages []InstalledDependency

	// Assumed is set when the structured part of the output was
	// malformed and the parse degraded to "assume the install
	// succeeded, dependency details unknown".
	Assumed bool
}

// CachedVersion is the persisted record of the latest known application
// version, with the user's upgrade-prompt preference for it.
type CachedVersion struct {
	// Version is the latest version seen on the channels, empty when
	// nothing has been cached yet.
	Version string `yaml:"version"`

	// Ignore suppresses upgrade prompts for this specific version.
	// A newer release resets it because Version changes.
	Ignore bool `yaml:"ignore,omitempty"`
}

// UpgradeChoice is the user's answer to an upgrade prompt.
type UpgradeChoice string

const (
	// UpgradeChoiceNow upgrades immediately.
	UpgradeChoiceNow UpgradeChoice = "now"

	// UpgradeChoiceLater skips the upgrade but keeps prompting on
	// future launches.
	UpgradeChoiceLater UpgradeChoice = "later"

	// UpgradeChoiceIgnore skips the upgrade and suppresses prompts
	// for this version permanently.
	UpgradeChoiceIgnore UpgradeChoice = "ignore"
)
