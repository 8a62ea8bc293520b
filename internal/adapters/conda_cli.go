package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/types"
)

// CondaCLIAdapter drives the conda executable as a subprocess. All
// invocations block until the child exits; no timeouts are imposed.
type CondaCLIAdapter struct {
	// Prefix is the active environment prefix, "" when not running
	// inside one. The executable is looked up under the prefix before
	// falling back to PATH.
	Prefix string

	// Channels are passed as -c flags on search and install.
	Channels []string

	// lookPath is injectable for tests; defaults to exec.LookPath.
	lookPath func(file string) (string, error)
}

func NewCondaCLIAdapter(prefix string, channels []string) *CondaCLIAdapter {
	return &CondaCLIAdapter{
		Prefix:   prefix,
		Channels: channels,
		lookPath: exec.LookPath,
	}
}

// Locate returns the path to the conda executable, or a ToolNotFound
// error.
func (a *CondaCLIAdapter) Locate() (string, error) {
	if a.Prefix != "" {
		var candidates []string
		if runtime.GOOS == "windows" {
			candidates = []string{
				filepath.Join(a.Prefix, "Scripts", "conda.exe"),
				filepath.Join(a.Prefix, "Scripts", "conda.bat"),
			}
		} else {
			candidates = []string{
				filepath.Join(a.Prefix, "bin", "conda"),
				filepath.Join(a.Prefix, "condabin", "conda"),
			}
		}
		for _, candidate := range candidates {
			if path, err := a.lookPath(candidate); err == nil {
				return path, nil
			}
		}
	}
	path, err := a.lookPath("conda")
	if err != nil {
		return "", types.NewToolNotFound(err)
	}
	return path, nil
}

// Search queries the configured channels for every version of pkg.
func (a *CondaCLIAdapter) Search(ctx context.Context, pkg string) (types.PackageVersionInfo, error) {
	exe, err := a.Locate()
	if err != nil {
		return types.PackageVersionInfo{}, err
	}
	args := []string{"search"}
	for _, channel := range a.Channels {
		args = append(args, "-c", channel)
	}
	// -f restricts the match to pkg itself, not names containing it.
	args = append(args, "-f", pkg, "--json")

	log.Debug().Str("package", pkg).Msg("querying package versions")
	cmd := exec.CommandContext(ctx, exe, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return types.PackageVersionInfo{}, types.NewQueryFailed(
				fmt.Errorf("conda search: %w (stderr: %s)", err, bytes.TrimSpace(exitErr.Stderr)))
		}
		return types.PackageVersionInfo{}, types.NewQueryFailed(err)
	}
	return ParseSearchOutput(pkg, string(output))
}

// ListInstalled reports the installed version of pkg, "" when absent.
func (a *CondaCLIAdapter) ListInstalled(ctx context.Context, pkg string) (string, error) {
	exe, err := a.Locate()
	if err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, exe, "list", "-f", pkg, "--json")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", types.NewQueryFailed(
				fmt.Errorf("conda list: %w (stderr: %s)", err, bytes.TrimSpace(exitErr.Stderr)))
		}
		return "", types.NewQueryFailed(err)
	}
	return ParseListOutput(pkg, string(output))
}

// Install installs pkg at exactly version, streaming combined output to
// stream as the subprocess produces it. Returns the captured output.
func (a *CondaCLIAdapter) Install(ctx context.Context, pkg string, version string, stream io.Writer) (string, error) {
	exe, err := a.Locate()
	if err != nil {
		return "", err
	}
	args := []string{"install", "-y"}
	for _, channel := range a.Channels {
		args = append(args, "-c", channel)
	}
	args = append(args, fmt.Sprintf("%s==%s", pkg, version))

	log.Info().Str("package", pkg).Str("version", version).Msg("installing package")
	var captured bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, args...)
	sink := io.Writer(&captured)
	if stream != nil {
		sink = io.MultiWriter(&captured, stream)
	}
	cmd.Stdout = sink
	cmd.Stderr = sink
	if err := cmd.Run(); err != nil {
		return captured.String(), types.NewUpgradeFailed(captured.String(), err)
	}
	return captured.String(), nil
}
