package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"microdrop-launcher/internal/types"
)

// configTemplate points the application at data, plugin, and device
// directories relative to the profile directory, so a profile stays
// self-contained when moved.
const configTemplate = `data_dir = .
[plugins]
        # directory containing microdrop plugins
        directory = plugins
[microdrop.gui.experiment_log_controller]
        notebook_directory = notebooks
[microdrop.gui.dmf_device_controller]
        device_directory = devices
`

var profileSubdirs = []string{"devices", "plugins"}

// ProfileScaffoldAdapter creates and inspects the on-disk structure of
// profile directories.
type ProfileScaffoldAdapter struct{}

func NewProfileScaffoldAdapter() ProfileScaffoldAdapter {
	return ProfileScaffoldAdapter{}
}

// Create initializes dir with the minimal profile structure: the
// application config file, devices/ and plugins/ subdirectories, and a
// version marker recording the installed application version. A
// non-empty existing directory is refused unless overwrite is set.
func (a ProfileScaffoldAdapter) Create(dir string, version string, overwrite bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create profile directory").
			WithCause(err)
	}
	if !overwrite {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read profile directory").
				WithCause(err)
		}
		if len(entries) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("profile directory exists and is not empty: " + dir)
		}
	}

	rendered, err := renderConfig(dir)
	if err != nil {
		return err
	}
	configPath := filepath.Join(dir, types.ConfigFileName)
	if err := os.WriteFile(configPath, []byte(rendered), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write profile config").
			WithCause(err)
	}
	for _, sub := range profileSubdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create profile subdirectory " + sub).
				WithCause(err)
		}
	}
	return a.WriteMarker(dir, version)
}

// ReadMarker returns the first line of the profile's version marker,
// "" when no marker file exists.
func (a ProfileScaffoldAdapter) ReadMarker(dir string) (string, error) {
	file, err := os.Open(filepath.Join(dir, types.MarkerFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read version marker").
			WithCause(err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	return "", nil
}

// WriteMarker records version as the profile's marker.
func (a ProfileScaffoldAdapter) WriteMarker(dir string, version string) error {
	path := filepath.Join(dir, types.MarkerFileName)
	if err := os.WriteFile(path, []byte(version), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write version marker").
			WithCause(err)
	}
	return nil
}

func renderConfig(dir string) (string, error) {
	tmpl, err := template.New(types.ConfigFileName).Parse(configTemplate)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse config template").
			WithCause(err)
	}
	var builder strings.Builder
	if err := tmpl.Execute(&builder, map[string]string{"ProfileDir": filepath.Base(dir)}); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render config template").
			WithCause(err)
	}
	return builder.String(), nil
}
