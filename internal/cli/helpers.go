package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"microdrop-launcher/internal/app"
)

// newLauncherService builds the application service from the stock
// configuration overlaid with viper-provided settings.
func newLauncherService() app.Service {
	cfg := app.DefaultConfig()
	if v := viper.GetString("app_package"); v != "" {
		cfg.AppPackage = v
	}
	if v := viper.GetString("launcher_package"); v != "" {
		cfg.LauncherPackage = v
	}
	if v := viper.GetStringSlice("channels"); len(v) > 0 {
		cfg.Channels = v
	}
	if v := viper.GetStringSlice("app_command"); len(v) > 0 {
		cfg.AppCommand = v
	}
	return app.NewService(cfg)
}

// resolveString prefers an explicitly set flag value, then the viper
// key (config file or environment), then the flag default.
func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return value
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
