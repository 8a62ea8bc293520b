package ports

import "microdrop-launcher/internal/types"

// ProfileStorePort persists the profile registry. The filesystem is the
// durable owner between sessions; there is no concurrent-writer
// protection, last writer wins.
type ProfileStorePort interface {
	// Load reads the registry file. A missing file yields an empty
	// registry, not an error.
	Load(path string) ([]types.ProfileRecord, error)

	// Save writes the registry, most-recently-used first with
	// duplicate paths collapsed.
	Save(path string, records []types.ProfileRecord) error
}

// ProfileScaffoldPort creates the minimal on-disk structure of a new
// profile directory.
type ProfileScaffoldPort interface {
	// Create writes the application config file, devices/ and
	// plugins/ subdirectories, and the version marker. Refuses a
	// non-empty directory unless overwrite is set.
	Create(dir string, version string, overwrite bool) error

	// ReadMarker returns the first line of the profile's version
	// marker file, or "" when the marker is absent.
	ReadMarker(dir string) (string, error)

	// WriteMarker records version as the profile's marker.
	WriteMarker(dir string, version string) error
}
