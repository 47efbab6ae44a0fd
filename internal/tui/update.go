package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ThemeChangedMsg:
		// Notifications can arrive out of order; the manager holds the current theme.
		m.snapshot = m.manager.Snapshot()
		return m, nil

	case releaseMsg:
		return m.release(msg)

	case ActivatedMsg:
		m.status = "Activated " + msg.Label
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		mode := m.manager.Toggle()
		m.snapshot = m.manager.Snapshot()
		m.status = "Theme set to " + mode.String()
		return m, nil

	case key.Matches(msg, m.keys.System):
		if err := m.manager.SetMode(theme.ModeSystem); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.snapshot = m.manager.Snapshot()
		m.status = "Following system theme (" + m.snapshot.Name.String() + ")"
		return m, nil

	case key.Matches(msg, m.keys.Press):
		return m.press()
	}

	return m, nil
}

// press holds the focused control down and schedules its release.
func (m Model) press() (tea.Model, tea.Cmd) {
	b, i, ok := m.focused()
	if !ok {
		return m, nil
	}
	machine := b.control.Machine()
	machine.PressIn()
	if machine.Phase() != interaction.Pressed {
		m.status = b.label + " is unavailable"
		return m, nil
	}
	tab := m.tab
	return m, tea.Tick(PressDuration, func(time.Time) tea.Msg {
		return releaseMsg{tab: tab, index: i}
	})
}

func (m Model) release(msg releaseMsg) (tea.Model, tea.Cmd) {
	blocks := m.screens[msg.tab]
	if msg.index < 0 || msg.index >= len(blocks) || blocks[msg.index].control == nil {
		return m, nil
	}
	b := blocks[msg.index]
	if !b.control.Machine().Release() {
		return m, nil
	}
	// The activation may have toggled the theme.
	m.snapshot = m.manager.Snapshot()
	m.log.WithFields(map[string]any{"control": b.label, "tab": msg.tab.String()}).Debug("control activated")
	label := b.label
	return m, func() tea.Msg { return ActivatedMsg{Label: label} }
}
