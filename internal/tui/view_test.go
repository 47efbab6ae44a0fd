package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestHomeView(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()
	for _, want := range []string{
		"Home", "Buttons",
		"Hola, James",
		"REAP", "•••• 4567",
		"All Transactions",
		"Starbucks", "Salary", "Cathay Pacific",
		"View All Transactions",
		"light → light",
		"button: Toggle theme",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, focusMarker)
}

func TestButtonsView(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	out := m.View()
	for _, want := range []string{"Primary", "Secondary", "Link", "Large", "Leading icon", "Brand link", "Link with icon", "→"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Hola, James")
}

func TestViewShowsStatusAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runes("t"))

	out := m.View()
	assert.Contains(t, out, "Theme set to dark")
	assert.Contains(t, out, "dark → dark")
	assert.Contains(t, out, "quit")

	m, _ = update(t, m, runes("?"))
	assert.Contains(t, m.View(), "follow system")
}
