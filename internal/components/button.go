package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

// LoadingHint is announced while a button is busy.
const LoadingHint = "Loading, please wait"

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Style     variant.StyleFamily
	Variant   variant.RoleVariant
	Size      variant.Size
	Label     string
	HideLabel bool
	Leading   string
	Trailing  string
	Loading   bool
	Disabled  bool

	AccessibilityLabel string
	AccessibilityHint  string
}

// Button is a pressable control whose look is resolved from its options and
// interaction state on every render.
type Button struct {
	options ButtonOptions
	machine *interaction.Machine
}

// NewButton creates a button. opts configure its interaction machine.
func NewButton(options ButtonOptions, opts ...interaction.Option) *Button {
	b := &Button{
		options: options,
		machine: interaction.New(opts...),
	}
	b.machine.SetDisabled(options.Disabled)
	b.machine.SetLoading(options.Loading)
	return b
}

// Options returns the declared options.
func (b *Button) Options() ButtonOptions { return b.options }

// Machine exposes the press lifecycle.
func (b *Button) Machine() *interaction.Machine { return b.machine }

// WithLoading sets the loading flag.
func (b *Button) WithLoading(loading bool) *Button {
	b.options.Loading = loading
	b.machine.SetLoading(loading)
	return b
}

// WithDisabled sets the disabled flag.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	b.machine.SetDisabled(disabled)
	return b
}

// WithFocus sets the focus flag.
func (b *Button) WithFocus(focus bool) *Button {
	b.machine.SetFocused(focus)
	return b
}

// Config is the resolver input for the button's current state.
func (b *Button) Config() variant.Config {
	return variant.Config{
		Style:       b.options.Style,
		Variant:     b.options.Variant,
		Size:        b.options.Size,
		Interaction: b.machine.Interaction(),
	}
}

// Attributes resolves the button against ctx's tokens.
func (b *Button) Attributes(ctx RenderContext) variant.Attributes {
	return variant.Resolve(b.Config(), ctx.Tokens)
}

// View renders the button.
func (b *Button) View(ctx RenderContext) string {
	attrs := b.Attributes(ctx)
	label := b.options.Label
	if b.options.HideLabel {
		label = ""
	}
	slots := variant.ResolveSlots(attrs.State, b.options.Leading, label, b.options.Trailing)
	return RenderAttributes(ctx, attrs, slots)
}

// Accessibility describes the button for assistive technology.
func (b *Button) Accessibility() Accessibility {
	state := b.machine.State()
	a := Accessibility{
		Role:     RoleButton,
		Label:    b.options.AccessibilityLabel,
		Hint:     b.options.AccessibilityHint,
		Disabled: state.Inert() || b.options.Disabled,
		Busy:     state == variant.StateLoading,
	}
	if a.Label == "" {
		a.Label = b.options.Label
	}
	if a.Hint == "" && a.Busy {
		a.Hint = LoadingHint
	}
	return a
}

// RenderAttributes draws slots inside the box described by attrs. It is the
// single bridge from resolved attributes to a lipgloss style.
func RenderAttributes(ctx RenderContext, attrs variant.Attributes, slots variant.Slots) string {
	surface := ctx.Surface()
	fill := surface
	if !attrs.Background.IsTransparent() {
		fill = attrs.Background.Composite(surface)
	}

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(attrs.TextColor.Composite(fill).Fade(surface, attrs.Opacity).Hex())).
		Bold(attrs.Typography.Bold())
	if !attrs.Background.IsTransparent() {
		text = text.Background(ctx.Paint(attrs.Background, attrs.Opacity))
	}

	box := Style(ctx, text, PaddingX(attrs.PaddingX), PaddingY(attrs.PaddingY))
	if attrs.BorderWidth > 0 {
		box = box.Border(borderForWidth(attrs.BorderWidth)).
			BorderForeground(ctx.Paint(attrs.BorderColor, attrs.Opacity))
	}

	content := slotContent(ctx, attrs, slots, text)

	minCols := Cols(attrs.MinWidth)
	if w := lipgloss.Width(content) + 2*Cols(attrs.PaddingX); w < minCols {
		box = box.Width(minCols).Align(lipgloss.Center)
	}
	minRows := Rows(attrs.MinHeight)
	if attrs.BorderWidth > 0 {
		minRows -= 2
	}
	if minRows > 1 {
		box = box.Height(minRows).AlignVertical(lipgloss.Center)
	}

	return box.Render(content)
}

// slotContent renders each slot with text so that the spinner's colour change
// does not reset the background of the rest of the row.
func slotContent(ctx RenderContext, attrs variant.Attributes, slots variant.Slots, text lipgloss.Style) string {
	gap := text.Render(strings.Repeat(" ", Cols(attrs.Gap)))
	var parts []string
	if slots.Spinner {
		spin := text.Foreground(ctx.Paint(attrs.SpinnerColor, attrs.Opacity))
		parts = append(parts, spin.Render(ctx.Spinner))
	}
	for _, s := range []string{slots.Leading, slots.Label, slots.Trailing} {
		if s != "" {
			parts = append(parts, text.Render(s))
		}
	}
	return strings.Join(parts, gap)
}
