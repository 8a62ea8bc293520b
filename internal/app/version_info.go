package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"microdrop-launcher/internal/types"
)

// ResolveVersionInfo queries the package manager for installed and
// available versions. When the search output does not mark an installed
// entry, the installed version is resolved through a separate list
// query.
func (s Service) ResolveVersionInfo(ctx context.Context, req ResolveVersionRequest) (types.PackageVersionInfo, error) {
	pkg := strings.TrimSpace(req.Package)
	if pkg == "" {
		return types.PackageVersionInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}

	info, err := s.Manager.Search(ctx, pkg)
	if err != nil {
		return types.PackageVersionInfo{}, err
	}

	if info.Installed == nil {
		installed, listErr := s.Manager.ListInstalled(ctx, pkg)
		if listErr != nil {
			log.Debug().Err(listErr).Str("package", pkg).
				Msg("installed-version fallback query failed")
		} else if installed != "" {
			info.Installed = &installed
		}
	}
	return info, nil
}
