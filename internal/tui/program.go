package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// RunOptions controls how the program attaches to the terminal.
type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Run starts the demo and blocks until the user quits or ctx is cancelled.
// Theme changes that do not originate from a key press, such as the terminal
// scheme changing while in system mode, reach the program through Send.
func Run(ctx context.Context, manager *theme.Manager, run RunOptions, opts ...Option) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if run.Input != nil {
		programOpts = append(programOpts, tea.WithInput(run.Input))
	}
	if run.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(run.Output))
	}
	if run.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(manager, opts...), programOpts...)

	// Listeners run on the goroutine that changed the theme, which may be the
	// program's own event loop, so Send must not block it.
	unsubscribe := manager.Subscribe(func(s theme.Snapshot) {
		go p.Send(ThemeChangedMsg{Snapshot: s})
	})
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
