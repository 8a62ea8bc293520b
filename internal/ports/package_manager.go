package ports

import (
	"context"
	"io"

	"microdrop-launcher/internal/types"
)

// PackageManagerPort abstracts the external package manager CLI. The
// manager is treated as an opaque tool: structured or line-oriented
// text on stdout, exit code as the success signal.
type PackageManagerPort interface {
	// Search returns version info for a package from the configured
	// channels. Installed is nil when the search output does not mark
	// an installed entry; callers fall back to ListInstalled.
	Search(ctx context.Context, pkg string) (types.PackageVersionInfo, error)

	// ListInstalled returns the installed version of a package, or ""
	// when it is not installed.
	ListInstalled(ctx context.Context, pkg string) (string, error)

	// Install installs an exact package version, streaming subprocess
	// output to stream as it arrives, and returns the full captured
	// output. A non-zero subprocess exit yields an UpgradeFailed
	// error carrying that output.
	Install(ctx context.Context, pkg string, version string, stream io.Writer) (string, error)
}
