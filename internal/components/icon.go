package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// IconTone picks the circle colour behind an icon.
type IconTone int

const (
	IconRed IconTone = iota
	IconBlue
	IconGreen
)

// iconCircle is 40 units square.
const iconCircle = 40

// IconGroup is a glyph on a tinted circle.
type IconGroup struct {
	Tone        IconTone
	Glyph       string
	Decorative  bool
	Description string
}

// BackgroundKey returns the circle colour: the 100 shade on light sets and
// the 800 shade on dark ones.
func (g IconGroup) BackgroundKey(name tokens.Name) tokens.ColorKey {
	dark := name == tokens.Dark
	switch g.Tone {
	case IconBlue:
		if dark {
			return tokens.Blue800
		}
		return tokens.Blue100
	case IconGreen:
		if dark {
			return tokens.Green800
		}
		return tokens.Green100
	default:
		if dark {
			return tokens.Red800
		}
		return tokens.Red100
	}
}

// View renders the circle.
func (g IconGroup) View(ctx RenderContext) string {
	glyph := g.Glyph
	if glyph == "" {
		glyph = "•"
	}
	return Style(ctx, lipgloss.NewStyle(),
		Background(g.BackgroundKey(ctx.Tokens.Name())),
		Foreground(tokens.Foreground100),
	).Width(Cols(iconCircle)).Align(lipgloss.Center).Render(glyph)
}

// Accessibility hides decorative icons and labels the rest.
func (g IconGroup) Accessibility() Accessibility {
	if g.Decorative {
		return Accessibility{Role: RoleNone, Hidden: true}
	}
	a := Accessibility{Role: RoleImage, Label: g.Description}
	if a.Label == "" {
		a.Label = "Icon"
		a.Hint = "Decorative icon"
	}
	return a
}
