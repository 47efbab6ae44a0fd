package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect or change the persisted theme preference",
	}

	cmd.AddCommand(newThemeShowCmd(flags))
	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))

	return cmd
}

func newThemeShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored mode and the theme it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, logToStderr, func(_ context.Context, app *appContext) error {
				snap := app.manager.Snapshot()
				platformScheme := app.scheme.Scheme().String()
				if platformScheme == "" {
					platformScheme = "unknown"
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Mode:     %s\n", snap.Mode)
				fmt.Fprintf(out, "Theme:    %s\n", snap.Name)
				fmt.Fprintf(out, "Platform: %s\n", platformScheme)
				fmt.Fprintf(out, "Store:    %s", app.cfg.Storage.Backend)
				if app.cfg.Storage.Path != "" {
					fmt.Fprintf(out, " (%s)", app.cfg.Storage.Path)
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <mode>",
		Short:     "Store light, dark or system as the theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: modeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing mode %q", args[0]), err, "Use one of: "+strings.Join(modeNames(), ", ")+".")
			}
			return withApp(cmd, flags, logToStderr, func(_ context.Context, app *appContext) error {
				if err := app.manager.SetMode(mode); err != nil {
					return newCommandError("set theme", "applying mode", err, "")
				}
				printModeChange(cmd, app.manager.Snapshot())
				return nil
			})
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch to the opposite of the theme currently shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, logToStderr, func(_ context.Context, app *appContext) error {
				app.manager.Toggle()
				printModeChange(cmd, app.manager.Snapshot())
				return nil
			})
		},
	}
}

func printModeChange(cmd *cobra.Command, snap theme.Snapshot) {
	fmt.Fprintf(cmd.OutOrStdout(), "Theme mode set to %s (renders %s)\n", snap.Mode, snap.Name)
}

func modeNames() []string {
	modes := theme.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
