package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/core"
	"microdrop-launcher/internal/types"
)

// CheckUpdates refreshes the latest-version cache from the channels.
// Only versions sharing the installed major version are considered, so
// a major release never triggers in-place upgrade prompts. Caching a
// new version clears any ignore preference recorded for the previous
// one.
func (s Service) CheckUpdates(ctx context.Context, req CheckUpdatesRequest) (CheckUpdatesResult, error) {
	info, err := s.ResolveVersionInfo(ctx, ResolveVersionRequest{Package: req.Package})
	if err != nil {
		return CheckUpdatesResult{}, err
	}
	if info.Installed == nil {
		return CheckUpdatesResult{}, types.NewNotInstalled(req.Package)
	}
	installed := *info.Installed

	result := CheckUpdatesResult{Installed: installed}
	latest, ok := core.UpgradeTarget(info, true)
	if !ok {
		return result, nil
	}
	result.Latest = latest
	result.UpdateAvailable = core.CompareVersions(installed, latest) < 0

	major, err := core.MajorVersion(installed)
	if err != nil {
		return result, err
	}
	cache, err := s.cacheFor(major)
	if err != nil {
		return result, err
	}
	cached, err := cache.Load()
	if err != nil {
		return result, err
	}
	result.Ignored = cached.Ignore && cached.Version == latest

	if cached.Version != latest {
		if err := cache.Save(types.CachedVersion{Version: latest}); err != nil {
			return result, err
		}
		log.Debug().Str("package", req.Package).Str("latest", latest).
			Msg("cached latest version")
	}
	return result, nil
}
