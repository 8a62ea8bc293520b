package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"microdrop-launcher/internal/app"
)

type upgradeOptions struct {
	MatchMajor bool
}

func newUpgradeCommand() *cobra.Command {
	opts := upgradeOptions{}
	cmd := &cobra.Command{
		Use:   "upgrade [package]",
		Short: "Upgrade a package to the newest available version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := ""
			if len(args) > 0 {
				pkg = args[0]
			}
			return runUpgrade(cmd.Context(), opts, pkg)
		},
	}
	cmd.Flags().BoolVar(&opts.MatchMajor, "match-major", false, "Only consider versions sharing the installed major version")
	return cmd
}

func runUpgrade(ctx context.Context, opts upgradeOptions, pkg string) error {
	service := newLauncherService()
	if pkg == "" {
		pkg = service.Config.AppPackage
	}

	result, err := service.Upgrade(ctx, app.UpgradeRequest{
		Package:    pkg,
		MatchMajor: opts.MatchMajor,
	})
	if err != nil {
		return err
	}
	if !result.Upgraded() {
		fmt.Printf("%s is already up to date (%s)\n", result.Package, *result.OriginalVersion)
		return nil
	}

	color.Green("upgraded %s: %s -> %s", result.Package, *result.OriginalVersion, *result.NewVersion)
	for _, dep := range result.InstalledDependencies {
		fmt.Printf("  installed %s %s\n", dep.Package, dep.Version)
	}
	return nil
}
