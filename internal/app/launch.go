package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/core"
	"microdrop-launcher/internal/types"
)

// RestartExitCode is the child exit code that requests an immediate
// relaunch with the same profile, used by the application's "restart"
// menu action.
const RestartExitCode = 5

// Launch starts the application with one profile and blocks until it
// exits with a non-restart code. The launcher's working directory is
// moved into the profile for the lifetime of the child and restored
// afterwards.
func (s Service) Launch(ctx context.Context, req LaunchRequest) (int, error) {
	profile := req.ProfilePath
	if !isDir(profile) {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("profile directory does not exist: " + profile)
	}
	installed, _, err := s.installedAppVersion(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.confirmProfileVersion(profile, installed); err != nil {
		return 0, err
	}

	configPath := filepath.Join(profile, types.ConfigFileName)

	original, err := os.Getwd()
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read working directory").
			WithCause(err)
	}
	if err := os.Chdir(profile); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to enter profile directory").
			WithCause(err)
	}
	defer func() {
		if err := os.Chdir(original); err != nil {
			log.Warn().Err(err).Str("dir", original).
				Msg("failed to restore working directory")
		}
	}()

	code := RestartExitCode
	for code == RestartExitCode {
		log.Info().Str("profile", profile).Msg("starting application")
		code, err = s.Runner.Run(ctx, profile, configPath)
		if err != nil {
			return 0, err
		}
		if code == RestartExitCode {
			log.Info().Str("profile", profile).Msg("restart requested")
		}
	}
	return code, nil
}

// RunLauncher drives a full launcher session: best-effort self-upgrade
// and update check, profile selection, launch loop, and registry
// bookkeeping. Upgrade-phase failures never prevent the launch.
func (s Service) RunLauncher(ctx context.Context, req RunRequest) (int, error) {
	if !req.NoUpgrade {
		s.selfUpgrade(ctx)
		s.offerAppUpgrade(ctx)
	}

	loaded, err := s.LoadProfiles(ctx, LoadProfilesRequest{Path: req.ProfilesPath})
	if err != nil {
		return 0, err
	}
	selectable := s.selectableProfiles(loaded.Records, loaded.Installed)
	if len(selectable) == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no profiles compatible with installed version " + loaded.Installed)
	}

	var profile string
	if req.Default || (!req.NoAuto && len(selectable) == 1) {
		profile = selectable[0].Path
	} else {
		profile, err = s.Prompter.SelectProfile(selectable)
		if err != nil {
			return 0, err
		}
		if profile == "" {
			log.Info().Msg("no profile selected")
			return 0, nil
		}
	}

	code, err := s.Launch(ctx, LaunchRequest{ProfilePath: profile})
	if err != nil {
		return 0, err
	}
	if code == 0 {
		records := core.TouchProfile(loaded.Records, profile, s.Clock().UTC())
		if err := s.Store.Save(loaded.RegistryPath, records); err != nil {
			log.Warn().Err(err).Msg("failed to update profile registry")
		}
	}
	return code, nil
}

// selectableProfiles drops registry entries whose marker belongs to a
// different major version. Unmarked profiles stay selectable; they are
// confirmed at launch time.
func (s Service) selectableProfiles(records []types.ProfileRecord, installed string) []types.ProfileRecord {
	selectable := records[:0:0]
	for _, record := range records {
		marker, err := s.Scaffold.ReadMarker(record.Path)
		if err != nil {
			log.Warn().Err(err).Str("profile", record.Path).
				Msg("skipping unreadable profile")
			continue
		}
		decision := core.EvaluateProfile(marker, installed)
		if decision.Status == types.ProfileIncompatible {
			log.Warn().Str("profile", record.Path).
				Str("marker", decision.MarkerVersion).
				Str("installed", installed).
				Msg("skipping profile from another major version")
			continue
		}
		selectable = append(selectable, record)
	}
	return selectable
}

// selfUpgrade brings the launcher package itself up to date. Failures
// are logged and ignored.
func (s Service) selfUpgrade(ctx context.Context) {
	result, err := s.Upgrade(ctx, UpgradeRequest{Package: s.Config.LauncherPackage})
	if err != nil {
		log.Warn().Err(err).Str("package", s.Config.LauncherPackage).
			Msg("launcher self-upgrade skipped")
		return
	}
	if result.Upgraded() {
		log.Info().Str("version", *result.NewVersion).
			Msg("launcher upgraded, the new version takes effect on next start")
	}
}

// offerAppUpgrade refreshes the latest-version cache and, when a newer
// version within the installed major is known and not ignored, asks the
// user whether to upgrade now, later, or never for this version.
// Failures are logged and ignored.
func (s Service) offerAppUpgrade(ctx context.Context) {
	pkg := s.Config.AppPackage
	result, err := s.CheckUpdates(ctx, CheckUpdatesRequest{Package: pkg})
	if err != nil {
		log.Warn().Err(err).Str("package", pkg).Msg("update check skipped")
		return
	}
	if !result.UpdateAvailable || result.Ignored {
		return
	}

	choice, err := s.Prompter.ConfirmUpgrade(pkg, result.Latest)
	if err != nil {
		log.Warn().Err(err).Msg("upgrade prompt failed")
		return
	}
	switch choice {
	case types.UpgradeChoiceNow:
		upgraded, err := s.Upgrade(ctx, UpgradeRequest{Package: pkg, MatchMajor: true})
		if err != nil {
			log.Warn().Err(err).Str("package", pkg).Msg("upgrade failed")
			return
		}
		if upgraded.Upgraded() {
			log.Info().Str("package", pkg).Str("version", *upgraded.NewVersion).
				Msg("package upgraded")
		}
	case types.UpgradeChoiceIgnore:
		major, err := core.MajorVersion(result.Installed)
		if err != nil {
			return
		}
		cache, err := s.cacheFor(major)
		if err != nil {
			return
		}
		record := types.CachedVersion{Version: result.Latest, Ignore: true}
		if err := cache.Save(record); err != nil {
			log.Warn().Err(err).Msg("failed to record ignored version")
		}
	}
}
