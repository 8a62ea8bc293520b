package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/core"
	"microdrop-launcher/internal/types"
)

// Upgrade installs the newest available version of a package. The
// operation is idempotent: when the package is already at the newest
// version the result carries a nil NewVersion and no subprocess runs.
func (s Service) Upgrade(ctx context.Context, req UpgradeRequest) (types.UpgradeResult, error) {
	info, err := s.ResolveVersionInfo(ctx, ResolveVersionRequest{Package: req.Package})
	if err != nil {
		return types.UpgradeResult{}, err
	}

	result := types.UpgradeResult{
		Package:         info.Package,
		OriginalVersion: info.Installed,
	}
	if info.Installed == nil {
		return result, types.NewNotInstalled(req.Package)
	}

	target, ok := core.UpgradeTarget(info, req.MatchMajor)
	if !ok || target == *info.Installed {
		return result, nil
	}
	if core.CompareVersions(target, *info.Installed) < 0 {
		// Channels only ever list older builds; nothing to do.
		return result, nil
	}

	log.Info().Str("package", info.Package).
		Str("installed", *info.Installed).
		Str("target", target).
		Msg("upgrading package")

	output, err := s.Manager.Install(ctx, info.Package, target, s.Stream)
	if err != nil {
		return result, err
	}

	summary, parseErr := adapters.ParseInstallOutput(output)
	if parseErr != nil {
		// The install subprocess exited cleanly, so treat the upgrade
		// as done even though its output defeated the parser.
		log.Warn().Err(parseErr).Str("package", info.Package).
			Msg("install output unparseable, assuming upgrade succeeded")
		result.NewVersion = &target
		return result, nil
	}
	if summary.AlreadyInstalled {
		return result, nil
	}

	for _, installed := range summary.Packages {
		if installed.Package == info.Package {
			version := installed.Version
			result.NewVersion = &version
			continue
		}
		result.InstalledDependencies = append(result.InstalledDependencies, installed)
	}
	return result, nil
}
