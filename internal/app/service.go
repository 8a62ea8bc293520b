package app

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/ports"
)

// Config carries the package and subprocess settings the launcher
// operates with. Values come from flags/config via the CLI.
type Config struct {
	// AppPackage is the application package name.
	AppPackage string

	// LauncherPackage is this launcher's own package name, upgraded
	// before profile handling unless suppressed.
	LauncherPackage string

	// Channels are the package manager channels searched and
	// installed from.
	Channels []string

	// AppCommand is the program and leading arguments used to start
	// the application.
	AppCommand []string
}

// DefaultConfig returns the stock MicroDrop settings.
func DefaultConfig() Config {
	return Config{
		AppPackage:      "microdrop",
		LauncherPackage: "microdrop-launcher",
		Channels:        []string{"sci-bots", "wheeler-microfluidics"},
		AppCommand:      []string{"python", "-m", "microdrop.microdrop"},
	}
}

type Service struct {
	Config   Config
	Manager  ports.PackageManagerPort
	Env      ports.EnvironmentPort
	Store    ports.ProfileStorePort
	Scaffold ports.ProfileScaffoldPort
	Prompter ports.PrompterPort
	Runner   ports.AppRunnerPort

	// NewCache builds the latest-version cache for a resolved cache
	// file path; the path depends on the installed major version.
	NewCache func(path string) ports.VersionCachePort

	// Stream receives install subprocess output as it arrives.
	Stream io.Writer

	Clock func() time.Time
}

func NewService(cfg Config) Service {
	conda := adapters.NewCondaCLIAdapter(os.Getenv("CONDA_PREFIX"), cfg.Channels)
	return Service{
		Config:   cfg,
		Manager:  conda,
		Env:      adapters.NewEnvironmentAdapter(conda),
		Store:    adapters.NewProfileStoreAdapter(),
		Scaffold: adapters.NewProfileScaffoldAdapter(),
		Prompter: adapters.NewHuhPrompter(),
		Runner:   adapters.NewExecAppRunner(cfg.AppCommand),
		NewCache: func(path string) ports.VersionCachePort {
			return adapters.NewVersionCacheAdapter(path)
		},
		Stream: os.Stdout,
		Clock:  time.Now,
	}
}

// cacheFor returns the latest-version cache scoped to the config
// directory of the given major version.
func (s Service) cacheFor(majorVersion int) (ports.VersionCachePort, error) {
	dir, err := s.Env.ConfigDir(majorVersion)
	if err != nil {
		return nil, err
	}
	return s.NewCache(filepath.Join(dir, adapters.CacheFileName)), nil
}
