package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// View renders the current model state.
func (m Model) View() string {
	ctx := components.NewRenderContext(m.snapshot.Tokens).WithSpinner(m.spinner.View())
	st := newStyles(ctx)

	var content strings.Builder
	content.WriteString(m.renderTabs(st))
	content.WriteString("\n\n")
	content.WriteString(m.renderScreen(ctx, st))
	content.WriteString("\n\n")
	content.WriteString(m.renderStatus(st))
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return st.page.Render(content.String())
}

func (m Model) renderTabs(st styles) string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, st.activeTab.Render(name))
			continue
		}
		tabs = append(tabs, st.tab.Render(name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
	theme := st.muted.Render(m.snapshot.Mode.String() + " → " + m.snapshot.Name.String())
	gap := contentWidth - lipgloss.Width(bar) - lipgloss.Width(theme)
	if gap < 1 {
		gap = 1
	}
	return bar + strings.Repeat(" ", gap) + theme
}

func (m Model) renderScreen(ctx components.RenderContext, st styles) string {
	_, focused, _ := m.focused()
	blocks := m.screens[m.tab]
	rows := make([]string, 0, len(blocks))
	for i, b := range blocks {
		view := b.view(ctx)
		h := lipgloss.Height(view)
		marker := st.gutter.Height(h).Render("")
		if i == focused {
			marker = st.focusGutter.Render(strings.TrimSuffix(strings.Repeat(focusMarker+"\n", h), "\n"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, marker, view))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStatus(st styles) string {
	var lines []string
	if b, _, ok := m.focused(); ok {
		lines = append(lines, st.muted.Render(b.control.Accessibility().String()))
	}
	if m.status != "" {
		lines = append(lines, st.status.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

// focusMarker is drawn beside the focused block.
const focusMarker = "▌"

type styles struct {
	page        lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	muted       lipgloss.Style
	status      lipgloss.Style
	gutter      lipgloss.Style
	focusGutter lipgloss.Style
}

// newStyles derives the chrome around the components from the same tokens.
func newStyles(ctx components.RenderContext) styles {
	fg := func(key tokens.ColorKey) lipgloss.Style {
		return components.Style(ctx, lipgloss.NewStyle(), components.Foreground(key))
	}
	return styles{
		page: lipgloss.NewStyle().Padding(1, 2),
		tab:  fg(tokens.MutedForeground100).Padding(0, 1),
		activeTab: fg(tokens.Brand500).Padding(0, 1).Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ctx.Color(tokens.Brand400)),
		muted:       fg(tokens.MutedForeground100),
		status:      fg(tokens.Foreground100).Bold(true),
		gutter:      lipgloss.NewStyle().Width(2),
		focusGutter: fg(tokens.Brand400).Width(2),
	}
}
