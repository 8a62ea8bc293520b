package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"microdrop-launcher/internal/app"
)

func newCheckUpdatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-updates",
		Short: "Refresh the cached latest version from the channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckUpdates(cmd.Context())
		},
	}
}

func runCheckUpdates(ctx context.Context) error {
	service := newLauncherService()
	result, err := service.CheckUpdates(ctx, app.CheckUpdatesRequest{
		Package: service.Config.AppPackage,
	})
	if err != nil {
		return err
	}

	fmt.Printf("installed: %s\n", result.Installed)
	if result.Latest != "" {
		fmt.Printf("latest:    %s\n", result.Latest)
	}
	switch {
	case !result.UpdateAvailable:
		fmt.Println("up to date")
	case result.Ignored:
		fmt.Printf("version %s is available but ignored\n", result.Latest)
	default:
		color.Yellow("a new version is available, run 'microdrop-launcher upgrade' to install it")
	}
	return nil
}
