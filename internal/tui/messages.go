package tui

import (
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Tab selects which screen is shown.
type Tab int

const (
	TabHome Tab = iota
	TabButtons
)

var tabNames = []string{"Home", "Buttons"}

func (t Tab) String() string {
	if t >= 0 && int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "unknown"
}

// PressDuration is how long a keyboard press holds the pressed state.
const PressDuration = 120 * time.Millisecond

// ThemeChangedMsg tells the program that the theme changed. The snapshot is
// informational; the model re-reads the manager when it receives one.
type ThemeChangedMsg struct {
	Snapshot theme.Snapshot
}

// releaseMsg ends the keyboard press started on a control.
type releaseMsg struct {
	tab   Tab
	index int
}

// ActivatedMsg reports that a control emitted an activation.
type ActivatedMsg struct {
	Label string
}
