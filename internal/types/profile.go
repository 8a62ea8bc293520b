package types

import "time"

// MarkerFileName is the sidecar file inside a profile directory holding
// the application version the profile was created or confirmed with.
const MarkerFileName = "RELEASE-VERSION"

// ConfigFileName is the application configuration file inside a profile
// directory. The launcher injects its path into the child process; it
// never parses the file itself.
const ConfigFileName = "microdrop.ini"

// ProfileRecord is one entry in the profile registry. Path is the unique
// key; Used is the most recent successful launch time, nil for profiles
// that have never been launched.
type ProfileRecord struct {
	Path string     `yaml:"path"`
	Used *time.Time `yaml:"used_timestamp"`
}

// ProfileStatus classifies a profile against the installed application
// version.
type ProfileStatus string

const (
	// ProfileCompatible means the marker's major version matches the
	// installed application's major version.
	ProfileCompatible ProfileStatus = "compatible"

	// ProfileIncompatible means the marker exists but its major
	// version differs from the installed application's.
	ProfileIncompatible ProfileStatus = "incompatible"

	// ProfileUnmarked means no marker file is present; the profile
	// needs confirmation before it can be marked and launched.
	ProfileUnmarked ProfileStatus = "unmarked"
)
