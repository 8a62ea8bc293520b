package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"microdrop-launcher/internal/adapters"
	"microdrop-launcher/internal/app"
)

type launchOptions struct {
	ProfilesPath string
	Default      bool
	NoAuto       bool
	NoUpgrade    bool
	Yes          bool
}

func newLaunchCommand() *cobra.Command {
	opts := launchOptions{}
	cmd := &cobra.Command{
		Use:   "launch [profile-dir]",
		Short: "Launch the application, restarting while it requests it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := ""
			if len(args) > 0 {
				profile = args[0]
			}
			return runLaunch(cmd.Context(), cmd, opts, profile)
		},
	}
	cmd.Flags().StringVarP(&opts.ProfilesPath, "profiles-path", "f", "", "Profile registry file path")
	cmd.Flags().BoolVar(&opts.Default, "default", false, "Launch the most recently used profile without asking")
	cmd.Flags().BoolVar(&opts.NoAuto, "no-auto", false, "Always show the profile selection prompt")
	cmd.Flags().BoolVar(&opts.NoUpgrade, "no-upgrade", false, "Skip the self-upgrade and update check")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Answer prompts without user interaction")
	_ = viper.BindPFlag("profiles_path", cmd.Flags().Lookup("profiles-path"))
	_ = viper.BindPFlag("no_upgrade", cmd.Flags().Lookup("no-upgrade"))
	return cmd
}

func runLaunch(ctx context.Context, cmd *cobra.Command, opts launchOptions, profile string) error {
	service := newLauncherService()
	if opts.Yes {
		service.Prompter = adapters.NewAutoPrompter()
	}

	var (
		code int
		err  error
	)
	if profile != "" {
		code, err = service.Launch(ctx, app.LaunchRequest{ProfilePath: profile})
	} else {
		code, err = service.RunLauncher(ctx, app.RunRequest{
			ProfilesPath: resolveString(cmd, opts.ProfilesPath, "profiles_path", "profiles-path"),
			Default:      opts.Default,
			NoAuto:       opts.NoAuto,
			NoUpgrade:    resolveBool(cmd, opts.NoUpgrade, "no_upgrade", "no-upgrade"),
		})
	}
	if err != nil {
		return err
	}
	// Propagate the application's exit code.
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
