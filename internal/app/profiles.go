package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/core"
	"microdrop-launcher/internal/types"
)

// RegistryFileName is the profile registry file under the
// version-scoped config directory.
const RegistryFileName = "profiles.yml"

// LoadProfiles reads the profile registry for the installed major
// version. Registry entries whose directories no longer exist are
// dropped from the returned set (they stay on disk until the next
// save). An empty registry is seeded with a default profile, scaffolded
// on first use.
func (s Service) LoadProfiles(ctx context.Context, req LoadProfilesRequest) (LoadProfilesResult, error) {
	installed, major, err := s.installedAppVersion(ctx)
	if err != nil {
		return LoadProfilesResult{}, err
	}
	path, err := s.registryPath(req.Path, major)
	if err != nil {
		return LoadProfilesResult{}, err
	}

	records, err := s.Store.Load(path)
	if err != nil {
		return LoadProfilesResult{}, err
	}
	records = keepExisting(records)

	if len(records) == 0 {
		defaultDir, err := s.defaultProfileDir(installed, major)
		if err != nil {
			return LoadProfilesResult{}, err
		}
		if !isDir(defaultDir) {
			log.Info().Str("profile", defaultDir).Msg("scaffolding default profile")
			if err := s.Scaffold.Create(defaultDir, installed, false); err != nil {
				return LoadProfilesResult{}, err
			}
		}
		records = []types.ProfileRecord{{Path: defaultDir}}
		if err := s.Store.Save(path, records); err != nil {
			return LoadProfilesResult{}, err
		}
	}

	return LoadProfilesResult{
		Records:      records,
		RegistryPath: path,
		Installed:    installed,
	}, nil
}

// CreateProfile scaffolds a new profile directory for the installed
// version and registers it.
func (s Service) CreateProfile(ctx context.Context, req CreateProfileRequest) error {
	dir := strings.TrimSpace(req.Path)
	if dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile path is required")
	}
	installed, major, err := s.installedAppVersion(ctx)
	if err != nil {
		return err
	}
	if err := s.Scaffold.Create(dir, installed, req.Overwrite); err != nil {
		return err
	}
	return s.registerProfile(dir, major, req.RegistryPath)
}

// ImportProfile registers an existing profile directory. Unmarked
// directories are confirmed and marked with the installed version;
// directories marked with a different major version are rejected.
func (s Service) ImportProfile(ctx context.Context, req ImportProfileRequest) error {
	dir := strings.TrimSpace(req.Path)
	if !isDir(dir) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("profile directory does not exist: %s", dir))
	}
	installed, major, err := s.installedAppVersion(ctx)
	if err != nil {
		return err
	}
	if err := s.confirmProfileVersion(dir, installed); err != nil {
		return err
	}
	return s.registerProfile(dir, major, req.RegistryPath)
}

// RemoveProfile removes a profile from the registry, optionally
// deleting its directory.
func (s Service) RemoveProfile(ctx context.Context, req RemoveProfileRequest) error {
	_, major, err := s.installedAppVersion(ctx)
	if err != nil {
		return err
	}
	path, err := s.registryPath(req.RegistryPath, major)
	if err != nil {
		return err
	}
	records, err := s.Store.Load(path)
	if err != nil {
		return err
	}
	records = core.RemoveProfile(records, req.Path)
	if err := s.Store.Save(path, records); err != nil {
		return err
	}
	if req.DeleteData {
		log.Info().Str("profile", req.Path).Msg("deleting profile directory")
		if err := os.RemoveAll(req.Path); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to delete profile directory").
				WithCause(err)
		}
	}
	return nil
}

// ClassifyProfile reports how a profile directory relates to the
// installed version: compatible, incompatible, or unmarked.
func (s Service) ClassifyProfile(dir string, installed string) types.ProfileStatus {
	marker, err := s.Scaffold.ReadMarker(dir)
	if err != nil {
		return types.ProfileUnmarked
	}
	return core.EvaluateProfile(marker, installed).Status
}

// confirmProfileVersion gates a profile directory against the installed
// version. Compatible profiles pass. Unmarked profiles require a user
// confirmation, after which the installed version is written as the
// marker. Incompatible profiles fail with a VersionMismatch error.
func (s Service) confirmProfileVersion(dir string, installed string) error {
	marker, err := s.Scaffold.ReadMarker(dir)
	if err != nil {
		return err
	}
	decision := core.EvaluateProfile(marker, installed)
	switch decision.Status {
	case types.ProfileCompatible:
		return nil
	case types.ProfileIncompatible:
		return decision.Err
	}

	confirmed, err := s.Prompter.Confirm(
		fmt.Sprintf("Use profile with MicroDrop v%s?", installed),
		fmt.Sprintf("No version marker found in %s. Confirm the profile was "+
			"created with the installed version (%s).", dir, installed),
	)
	if err != nil {
		return err
	}
	if !confirmed {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("profile version not confirmed: %s", dir))
	}
	return s.Scaffold.WriteMarker(dir, installed)
}

// installedAppVersion resolves the installed application version and
// its major component.
func (s Service) installedAppVersion(ctx context.Context) (string, int, error) {
	assert.NotEmpty(ctx, s.Config.AppPackage, "app package must be configured")
	installed, err := s.Env.InstalledVersion(ctx, s.Config.AppPackage)
	if err != nil {
		return "", 0, err
	}
	major, err := core.MajorVersion(installed)
	if err != nil {
		return "", 0, err
	}
	return installed, major, nil
}

// registryPath resolves an explicit registry file path, falling back to
// the default location under the version-scoped config directory.
func (s Service) registryPath(explicit string, major int) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := s.Env.ConfigDir(major)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RegistryFileName), nil
}

// defaultProfileDir is the data directory for the installed major
// version. When that directory already holds a profile from a different
// major version, a version-suffixed sibling is used instead.
func (s Service) defaultProfileDir(installed string, major int) (string, error) {
	dir, err := s.Env.DataDir(major)
	if err != nil {
		return "", err
	}
	if !isDir(dir) {
		return dir, nil
	}
	marker, err := s.Scaffold.ReadMarker(dir)
	if err != nil {
		return "", err
	}
	decision := core.EvaluateProfile(marker, installed)
	if decision.Status != types.ProfileIncompatible {
		return dir, nil
	}
	sibling := filepath.Join(filepath.Dir(dir),
		fmt.Sprintf("%s-v%d.0", adapters.AppDirName, major))
	log.Warn().Str("profile", dir).Str("marker", decision.MarkerVersion).
		Str("fallback", sibling).
		Msg("default profile belongs to another major version")
	return sibling, nil
}

func (s Service) registerProfile(dir string, major int, registryPath string) error {
	path, err := s.registryPath(registryPath, major)
	if err != nil {
		return err
	}
	records, err := s.Store.Load(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return s.Store.Save(path, core.AddProfile(records, abs))
}

func keepExisting(records []types.ProfileRecord) []types.ProfileRecord {
	kept := records[:0:0]
	for _, record := range records {
		if isDir(record.Path) {
			kept = append(kept, record)
		}
	}
	return kept
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
