package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Terminal cells are coarser than layout units. One column covers ColumnUnits
// and one row covers RowUnits.
const (
	ColumnUnits = 8
	RowUnits    = 16
)

// Cols converts layout units to terminal columns, rounding to nearest.
func Cols(units int) int {
	if units <= 0 {
		return 0
	}
	return (units + ColumnUnits/2) / ColumnUnits
}

// Rows converts layout units to terminal rows, rounding halves down.
func Rows(units int) int {
	if units <= 0 {
		return 0
	}
	return (units + RowUnits/2 - 1) / RowUnits
}

// DefaultSpinnerFrame stands in for the spinner when no frame is supplied.
const DefaultSpinnerFrame = "◌"

// RenderContext carries everything a component needs to draw one frame.
type RenderContext struct {
	Tokens  *tokens.Set
	Spinner string
	surface tokens.ColorKey
	opacity float64
}

// NewRenderContext renders against set on its background-100 surface.
func NewRenderContext(set *tokens.Set) RenderContext {
	return RenderContext{Tokens: set, Spinner: DefaultSpinnerFrame, surface: tokens.Background100, opacity: 1}
}

// WithSpinner returns a copy drawing frame as the loading indicator.
func (c RenderContext) WithSpinner(frame string) RenderContext {
	if frame == "" {
		frame = DefaultSpinnerFrame
	}
	c.Spinner = frame
	return c
}

// OnSurface returns a copy whose alpha tokens flatten onto key.
func (c RenderContext) OnSurface(key tokens.ColorKey) RenderContext {
	c.surface = key
	return c
}

// WithOpacity returns a copy that fades everything it paints.
func (c RenderContext) WithOpacity(opacity float64) RenderContext {
	c.opacity = opacity
	return c
}

// Opacity is the fade applied by Paint, 1 when unset.
func (c RenderContext) Opacity() float64 {
	if c.opacity <= 0 {
		return 1
	}
	return c.opacity
}

// Tinted reports whether the surface differs from the page background.
func (c RenderContext) Tinted() bool {
	return c.surface != "" && c.surface != tokens.Background100
}

// Surface is the opaque colour alpha and opacity blend against.
func (c RenderContext) Surface() tokens.Color {
	key := c.surface
	if key == "" {
		key = tokens.Background100
	}
	return c.Tokens.MustColor(key).Composite(c.Tokens.MustColor(tokens.Background100))
}

// Color flattens the token key onto the surface.
func (c RenderContext) Color(key tokens.ColorKey) lipgloss.Color {
	return c.Paint(c.Tokens.MustColor(key), 1)
}

// Paint flattens color onto the surface at opacity, combined with the
// context's own opacity. Transparent paints the surface itself.
func (c RenderContext) Paint(color tokens.Color, opacity float64) lipgloss.Color {
	surface := c.Surface()
	if color.IsTransparent() {
		return lipgloss.Color(surface.Hex())
	}
	return lipgloss.Color(color.Composite(surface).Fade(surface, opacity*c.Opacity()).Hex())
}

// Fill returns a style painting the surface, or an empty style on the page
// background.
func (c RenderContext) Fill() lipgloss.Style {
	if !c.Tinted() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Surface().Hex()))
}

// StyleApplier applies one styling concern to a lipgloss.Style.
type StyleApplier interface {
	Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return fn(base, ctx)
}

// Style applies a series of modifiers to create a final style.
func Style(ctx RenderContext, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, ctx)
	}
	return base
}

// Background fills with a colour token.
func Background(key tokens.ColorKey) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Background(ctx.Color(key))
	}
}

// Foreground colours text with a token. On a tinted surface the text also
// carries the surface so that it is not cut out of it.
func Foreground(key tokens.ColorKey) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		base = base.Foreground(ctx.Color(key))
		if ctx.Tinted() {
			base = base.Background(lipgloss.Color(ctx.Surface().Hex()))
		}
		return base
	}
}

// Border draws a frame whose weight follows width in layout units.
func Border(width int, key tokens.ColorKey) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if width <= 0 {
			return base
		}
		return base.Border(borderForWidth(width)).BorderForeground(ctx.Color(key))
	}
}

func borderForWidth(width int) lipgloss.Border {
	if width >= 2 {
		return lipgloss.ThickBorder()
	}
	return lipgloss.RoundedBorder()
}

// PaddingX pads left and right by units.
func PaddingX(units int) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		cols := Cols(units)
		return base.PaddingLeft(cols).PaddingRight(cols)
	}
}

// PaddingY pads top and bottom by units.
func PaddingY(units int) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		rows := Rows(units)
		return base.PaddingTop(rows).PaddingBottom(rows)
	}
}

// Typography applies the weight of a typography preset. Terminals have one
// font size, so only boldness survives.
func Typography(key tokens.TypeKey) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		preset, err := ctx.Tokens.Typography(key)
		if err != nil {
			return base
		}
		return base.Bold(preset.Bold())
	}
}
