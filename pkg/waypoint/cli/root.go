// Package cli implements the waypoint developer command line: a static
// server for the browser build and headless tools for inspecting routes.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trailmark/waypoint/pkg/waypoint"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Languages  []string
}

// NewRootCommand creates the root command for the waypoint CLI.
// Flags can also be set through WAYPOINT_* environment variables,
// e.g. WAYPOINT_LOG_LEVEL=debug or WAYPOINT_ADDR=:9000.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()
	v.SetEnvPrefix("WAYPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "waypoint",
		Short:         "Waypoint developer tools",
		Long:          "Serve the waypoint browser build and inspect its client-side routes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = v.GetString("config")
			opts.LogLevel = v.GetString("log-level")
			opts.Languages = v.GetStringSlice("lang")
			return waypoint.Init(waypoint.Options{
				ConfigPath: opts.ConfigPath,
				LogLevel:   opts.LogLevel,
				Languages:  opts.Languages,
			})
		},
	}

	cmd.PersistentFlags().String("config", "", "path to waypoint.toml")
	cmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringSlice("lang", nil, "preferred languages, most preferred first")
	_ = v.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewServeCommand(v))
	cmd.AddCommand(NewRoutesCommand())
	cmd.AddCommand(NewResolveCommand())

	return cmd
}
