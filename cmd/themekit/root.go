package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

type rootFlags struct {
	dir        string
	configFile string
	backend    string
	storePath  string
	logLevel   string
	verbose    bool
	scheme     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit renders a themed component kit in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the demo
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.dir, "dir", "", "Directory holding config and preferences (default ~/.themekit)")
	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default <dir>/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Preference store: file, sqlite or memory")
	cmd.PersistentFlags().StringVar(&flags.storePath, "store", "", "Preference store path")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.scheme, "scheme", "", "Platform colour scheme: auto, light, dark or none")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// configOptions maps the flags the user actually set onto config overrides.
func (f *rootFlags) configOptions(cmd *cobra.Command) []config.Option {
	overrides := map[string]any{}
	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	if changed("backend") {
		overrides[config.KeyStorageBackend] = f.backend
	}
	if changed("store") {
		overrides[config.KeyStoragePath] = f.storePath
	}
	if changed("log-level") {
		overrides[config.KeyLogLevel] = f.logLevel
	}
	if f.verbose {
		overrides[config.KeyLogLevel] = "debug"
	}
	if changed("scheme") {
		overrides[config.KeyPlatformScheme] = f.scheme
	}

	opts := []config.Option{config.WithOverrides(overrides)}
	if f.dir != "" {
		opts = append(opts, config.WithDir(f.dir))
	}
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	return opts
}
