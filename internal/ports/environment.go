package ports

import "context"

// EnvironmentPort provides process-wide environment lookups as an
// injectable capability so components stay testable without mutating
// real environment variables.
type EnvironmentPort interface {
	// InstalledVersion returns the installed version of a package, or
	// a NotInstalled error.
	InstalledVersion(ctx context.Context, pkg string) (string, error)

	// Prefix returns the active package-management environment prefix
	// directory, or "" when not running inside one.
	Prefix() string

	// ConfigDir returns the user configuration directory for the
	// application at the given major version.
	ConfigDir(majorVersion int) (string, error)

	// DataDir returns the user data directory for the application at
	// the given major version.
	DataDir(majorVersion int) (string, error)
}
