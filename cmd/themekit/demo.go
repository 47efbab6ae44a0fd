package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/platform"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive component gallery",
		Long:  `Launch the interactive gallery with a Home screen and a Buttons screen. Press t to toggle the theme and ? for help.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	out, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(out.Fd())) {
		return newCommandError("start demo", "checking the terminal", errNotTerminal, "Run the demo in an interactive terminal, or use 'themekit resolve' for scripted output.")
	}

	return withApp(cmd, flags, logToFile, func(ctx context.Context, app *appContext) error {
		opts := []tui.Option{tui.WithLogger(app.log)}
		if app.cfg.Haptics.Enabled {
			opts = append(opts, tui.WithFeedback(interaction.Feedback{
				Haptics:    platform.NewBell(cmd.ErrOrStderr()),
				Dispatcher: app.effects,
				Duration:   app.cfg.Haptics.Duration(),
				Log:        app.log,
			}))
		}

		app.log.Info("launching demo")
		if err := tui.Run(ctx, app.manager, tui.RunOptions{Output: out, AltScreen: true}, opts...); err != nil {
			app.log.Error(err, "demo execution failed")
			return newCommandError("run demo", "running the terminal UI", err, "")
		}
		app.log.Info("demo closed")
		return nil
	})
}
