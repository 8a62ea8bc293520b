package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"microdrop-launcher/internal/types"
)

// AppDirName is the directory name used for launcher state under the
// user config/data roots.
const AppDirName = "MicroDrop"

// installedLister is the slice of the package manager needed to answer
// installed-version queries.
type installedLister interface {
	ListInstalled(ctx context.Context, pkg string) (string, error)
}

// EnvironmentAdapter resolves environment-dependent lookups: the active
// environment prefix, installed package versions, and per-major-version
// application directories. Inside a package-management environment the
// directories live under the prefix (etc/ and share/); otherwise they
// follow the XDG base directories.
type EnvironmentAdapter struct {
	lister installedLister

	// getenv is injectable for tests; defaults to os.Getenv.
	getenv func(key string) string
}

func NewEnvironmentAdapter(lister installedLister) *EnvironmentAdapter {
	return &EnvironmentAdapter{lister: lister, getenv: os.Getenv}
}

// Prefix returns the active environment prefix, "" when not running
// inside one.
func (a *EnvironmentAdapter) Prefix() string {
	return a.getenv("CONDA_PREFIX")
}

// InstalledVersion returns the installed version of pkg, or a
// NotInstalled error.
func (a *EnvironmentAdapter) InstalledVersion(ctx context.Context, pkg string) (string, error) {
	version, err := a.lister.ListInstalled(ctx, pkg)
	if err != nil {
		return "", err
	}
	if version == "" {
		return "", types.NewNotInstalled(pkg)
	}
	return version, nil
}

// ConfigDir returns the user configuration directory for the given
// application major version.
func (a *EnvironmentAdapter) ConfigDir(majorVersion int) (string, error) {
	if prefix := a.Prefix(); prefix != "" {
		return filepath.Join(prefix, "etc", AppDirName, majorDirName(majorVersion)), nil
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, majorDirName(majorVersion)), nil
}

// DataDir returns the user data directory for the given application
// major version.
func (a *EnvironmentAdapter) DataDir(majorVersion int) (string, error) {
	if prefix := a.Prefix(); prefix != "" {
		return filepath.Join(prefix, "share", AppDirName, majorDirName(majorVersion)), nil
	}
	return filepath.Join(xdg.DataHome, AppDirName, majorDirName(majorVersion)), nil
}

func majorDirName(majorVersion int) string {
	return fmt.Sprintf("%d.0", majorVersion)
}
