// Package tui is the interactive component gallery: a Home screen and a
// Buttons screen rendered with the current theme.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Model is the demo's Bubbletea state.
type Model struct {
	manager  *theme.Manager
	snapshot theme.Snapshot
	log      *logger.Logger

	// UI state
	screens map[Tab][]block
	tab     Tab
	focus   int
	status  string

	// Component state
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// Dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*options)

type options struct {
	feedback *interaction.Feedback
	log      *logger.Logger
}

// WithFeedback gives every control haptic feedback on activation.
func WithFeedback(fb interaction.Feedback) Option {
	return func(o *options) { o.feedback = &fb }
}

// WithLogger sets the logger used for activation events.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// NewModel creates the demo model rendering manager's theme.
func NewModel(manager *theme.Manager, opts ...Option) Model {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle()

	if o.feedback != nil && o.feedback.Log == nil {
		o.feedback.Log = o.log
	}

	builder := screenBuilder{
		feedback: o.feedback,
		onToggle: func() { manager.Toggle() },
	}

	m := Model{
		manager:  manager,
		snapshot: manager.Snapshot(),
		log:      o.log.WithComponent("tui"),
		screens: map[Tab][]block{
			TabHome:    builder.home(),
			TabButtons: builder.buttons(),
		},
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   80,
		height:  24,
	}
	m.setFocus(0)
	return m
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Tab returns the visible screen.
func (m Model) Tab() Tab { return m.tab }

// Snapshot returns the theme the model renders with.
func (m Model) Snapshot() theme.Snapshot { return m.snapshot }

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// focusables returns the block indexes on the current tab that take focus.
func (m Model) focusables() []int {
	var out []int
	for i, b := range m.screens[m.tab] {
		if b.control != nil {
			out = append(out, i)
		}
	}
	return out
}

// focused returns the focused block on the current tab.
func (m Model) focused() (block, int, bool) {
	idx := m.focusables()
	if m.focus < 0 || m.focus >= len(idx) {
		return block{}, -1, false
	}
	i := idx[m.focus]
	return m.screens[m.tab][i], i, true
}

// setFocus moves focus to position n among the focusable blocks, wrapping.
func (m *Model) setFocus(n int) {
	idx := m.focusables()
	if len(idx) == 0 {
		return
	}
	if b, _, ok := m.focused(); ok {
		b.control.Machine().SetFocused(false)
	}
	n %= len(idx)
	if n < 0 {
		n += len(idx)
	}
	m.focus = n
	m.screens[m.tab][idx[n]].control.Machine().SetFocused(true)
}

func (m *Model) switchTab(delta int) {
	if b, _, ok := m.focused(); ok {
		b.control.Machine().SetFocused(false)
		b.control.Machine().Cancel()
	}
	n := (int(m.tab) + delta) % len(tabNames)
	if n < 0 {
		n += len(tabNames)
	}
	m.tab = Tab(n)
	m.focus = 0
	m.setFocus(0)
}
