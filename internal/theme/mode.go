// Package theme owns the process-wide theme selection. A Manager holds the
// stored mode, resolves it against the platform scheme and publishes every
// change to subscribers synchronously. Persistence is best effort.
package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Mode is the user's stored preference.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// DefaultMode is used until a persisted preference is adopted.
const DefaultMode = ModeLight

// PreferenceKey is the storage key of the persisted mode.
const PreferenceKey = "@theme_preference"

// Modes lists every mode.
func Modes() []Mode { return []Mode{ModeLight, ModeDark, ModeSystem} }

// Valid reports whether m is one of the three modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeLight, ModeDark, ModeSystem:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }

// ParseMode accepts exactly the three mode names, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", apperrors.NewConfigError(apperrors.KindMode, s, "expected light, dark or system")
	}
	return m, nil
}

// Resolve maps a mode and the platform scheme to a concrete token set name.
// An explicit mode always wins; system follows the platform and falls back to
// light when the platform scheme is unknown.
func Resolve(mode Mode, platform tokens.Name) tokens.Name {
	switch mode {
	case ModeDark:
		return tokens.Dark
	case ModeLight:
		return tokens.Light
	default:
		if platform.Valid() {
			return platform
		}
		return tokens.Light
	}
}
