package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/ports"
	"microdrop-launcher/internal/types"
)

// stubManager satisfies ports.PackageManagerPort with canned responses
// and records install invocations.
type stubManager struct {
	info       types.PackageVersionInfo
	searchErr  error
	listed     map[string]string
	installOut string
	installErr error

	installs []string
}

func (m *stubManager) Search(_ context.Context, pkg string) (types.PackageVersionInfo, error) {
	if m.searchErr != nil {
		return types.PackageVersionInfo{}, m.searchErr
	}
	info := m.info
	info.Package = pkg
	return info, nil
}

func (m *stubManager) ListInstalled(_ context.Context, pkg string) (string, error) {
	return m.listed[pkg], nil
}

func (m *stubManager) Install(_ context.Context, pkg string, version string, _ io.Writer) (string, error) {
	m.installs = append(m.installs, fmt.Sprintf("%s==%s", pkg, version))
	if m.installErr != nil {
		return "", m.installErr
	}
	return m.installOut, nil
}

// stubEnv satisfies ports.EnvironmentPort with directories rooted in a
// test temp dir.
type stubEnv struct {
	installed map[string]string
	root      string
}

func (e stubEnv) InstalledVersion(_ context.Context, pkg string) (string, error) {
	version := e.installed[pkg]
	if version == "" {
		return "", types.NewNotInstalled(pkg)
	}
	return version, nil
}

func (e stubEnv) Prefix() string { return "" }

func (e stubEnv) ConfigDir(major int) (string, error) {
	return filepath.Join(e.root, "config", fmt.Sprintf("%d.0", major)), nil
}

func (e stubEnv) DataDir(major int) (string, error) {
	return filepath.Join(e.root, "data", fmt.Sprintf("%d.0", major)), nil
}

// stubRunner returns a scripted sequence of exit codes and records the
// working directory observed on each run. Once the codes are exhausted
// it returns err when set, 0 otherwise.
type stubRunner struct {
	codes []int
	err   error
	runs  int
	dirs  []string
}

func (r *stubRunner) Run(_ context.Context, _ string, _ string) (int, error) {
	wd, _ := os.Getwd()
	r.dirs = append(r.dirs, wd)
	if r.runs >= len(r.codes) {
		if r.err != nil {
			return 0, r.err
		}
		return 0, nil
	}
	code := r.codes[r.runs]
	r.runs++
	return code, nil
}

// stubPrompter satisfies ports.PrompterPort with scripted answers.
type stubPrompter struct {
	confirm    bool
	confirms   int
	choice     types.UpgradeChoice
	selectPath string
	selects    int
}

func (p *stubPrompter) Confirm(string, string) (bool, error) {
	p.confirms++
	return p.confirm, nil
}

func (p *stubPrompter) ConfirmUpgrade(string, string) (types.UpgradeChoice, error) {
	return p.choice, nil
}

func (p *stubPrompter) SelectProfile([]types.ProfileRecord) (string, error) {
	p.selects++
	return p.selectPath, nil
}

// newTestService wires stubbed manager/env/prompter/runner with the
// real file-backed store, scaffold, and cache adapters under a temp
// root.
func newTestService(t *testing.T, manager *stubManager, env stubEnv, prompter *stubPrompter, runner *stubRunner) Service {
	t.Helper()
	return Service{
		Config:   DefaultConfig(),
		Manager:  manager,
		Env:      env,
		Store:    adapters.NewProfileStoreAdapter(),
		Scaffold: adapters.NewProfileScaffoldAdapter(),
		Prompter: prompter,
		Runner:   runner,
		NewCache: func(path string) ports.VersionCachePort {
			return adapters.NewVersionCacheAdapter(path)
		},
		Stream: io.Discard,
		Clock:  func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

// newMarkedProfile scaffolds a profile directory carrying version as
// its marker.
func newMarkedProfile(t *testing.T, version string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "profile")
	scaffold := adapters.NewProfileScaffoldAdapter()
	if err := scaffold.Create(dir, version, false); err != nil {
		t.Fatalf("scaffold profile: %v", err)
	}
	return dir
}
