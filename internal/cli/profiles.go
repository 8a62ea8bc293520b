package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"microdrop-launcher/internal/app"
	"microdrop-launcher/internal/types"
)

type profilesOptions struct {
	ProfilesPath string
}

func newProfilesCommand() *cobra.Command {
	opts := profilesOptions{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage the profile registry",
	}
	cmd.PersistentFlags().StringVarP(&opts.ProfilesPath, "profiles-path", "f", "", "Profile registry file path")
	_ = viper.BindPFlag("profiles_path", cmd.PersistentFlags().Lookup("profiles-path"))

	cmd.AddCommand(newProfilesListCommand(&opts))
	cmd.AddCommand(newProfilesCreateCommand(&opts))
	cmd.AddCommand(newProfilesImportCommand(&opts))
	cmd.AddCommand(newProfilesRemoveCommand(&opts))
	return cmd
}

func newProfilesListCommand(opts *profilesOptions) *cobra.Command {
	all := false
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered profiles, most recently used first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProfilesList(cmd.Context(), cmd, *opts, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include profiles from other major versions")
	return cmd
}

func runProfilesList(ctx context.Context, cmd *cobra.Command, opts profilesOptions, all bool) error {
	service := newLauncherService()
	result, err := service.LoadProfiles(ctx, app.LoadProfilesRequest{
		Path: resolveString(cmd, opts.ProfilesPath, "profiles_path", "profiles-path"),
	})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Options(tablewriter.WithHeader([]string{"Profile", "Last Used", "Status"}))
	for _, record := range result.Records {
		status := service.ClassifyProfile(record.Path, result.Installed)
		if status == types.ProfileIncompatible && !all {
			continue
		}
		used := "never"
		if record.Used != nil {
			used = record.Used.Format("2006-01-02 15:04")
		}
		if err := table.Append([]string{record.Path, used, renderStatus(status)}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderStatus(status types.ProfileStatus) string {
	switch status {
	case types.ProfileCompatible:
		return color.GreenString(string(status))
	case types.ProfileIncompatible:
		return color.RedString(string(status))
	default:
		return color.YellowString(string(status))
	}
}

func newProfilesCreateCommand(opts *profilesOptions) *cobra.Command {
	overwrite := false
	cmd := &cobra.Command{
		Use:   "create <dir>",
		Short: "Scaffold a new profile directory and register it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newLauncherService()
			err := service.CreateProfile(cmd.Context(), app.CreateProfileRequest{
				Path:         args[0],
				Overwrite:    overwrite,
				RegistryPath: resolveString(cmd, opts.ProfilesPath, "profiles_path", "profiles-path"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("created profile %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Scaffold into a non-empty directory")
	return cmd
}

func newProfilesImportCommand(opts *profilesOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Register an existing profile directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newLauncherService()
			err := service.ImportProfile(cmd.Context(), app.ImportProfileRequest{
				Path:         args[0],
				RegistryPath: resolveString(cmd, opts.ProfilesPath, "profiles_path", "profiles-path"),
			})
			if err != nil {
				return err
			}
			fmt.Printf("imported profile %s\n", args[0])
			return nil
		},
	}
}

func newProfilesRemoveCommand(opts *profilesOptions) *cobra.Command {
	deleteData := false
	yes := false
	cmd := &cobra.Command{
		Use:   "remove <dir>",
		Short: "Remove a profile from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newLauncherService()
			if deleteData && !yes {
				confirmed, err := service.Prompter.Confirm(
					"Delete profile data?",
					fmt.Sprintf("This permanently deletes %s and everything inside it.", args[0]),
				)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("aborted")
					return nil
				}
			}
			err := service.RemoveProfile(cmd.Context(), app.RemoveProfileRequest{
				Path:         args[0],
				RegistryPath: resolveString(cmd, opts.ProfilesPath, "profiles_path", "profiles-path"),
				DeleteData:   deleteData,
			})
			if err != nil {
				return err
			}
			fmt.Printf("removed profile %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&deleteData, "delete-data", false, "Also delete the profile directory")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the deletion confirmation")
	return cmd
}
