package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// TextVariant selects the colour and weight of a run of text.
type TextVariant string

const (
	TextLabel       TextVariant = "label"
	TextDescription TextVariant = "description"
	TextHeader      TextVariant = "header"
	TextButton      TextVariant = "button"
	TextDefault     TextVariant = "default"
	TextMuted       TextVariant = "muted"
	TextDestructive TextVariant = "destructive"
	TextAccent      TextVariant = "accent"
	TextSecondary   TextVariant = "secondary"
	TextPrimary     TextVariant = "primary"
	TextBrand       TextVariant = "brand"
)

// TextSize maps to a typography preset. Terminals cannot scale glyphs, so
// sizes only change weight and spacing.
type TextSize string

const (
	TextSizeLabel       TextSize = "label"
	TextSizeDescription TextSize = "description"
	TextSizeHeader      TextSize = "header"
	TextSizeButton      TextSize = "button"
	TextSizeDefault     TextSize = "default"
	TextSizeSm          TextSize = "sm"
	TextSizeLg          TextSize = "lg"
	TextSizeXl          TextSize = "xl"
)

type textLook struct {
	color tokens.ColorKey
	bold  bool
}

var textLooks = map[TextVariant]textLook{
	TextLabel:       {tokens.Foreground100, true},
	TextDescription: {tokens.MutedForeground100, false},
	TextHeader:      {tokens.Foreground100, true},
	TextButton:      {tokens.Foreground100, false},
	TextDefault:     {tokens.Foreground100, true},
	TextMuted:       {tokens.MutedForeground100, false},
	TextDestructive: {tokens.Destructive100, false},
	TextAccent:      {tokens.AccentForeground100, false},
	TextSecondary:   {tokens.SecondaryForeground100, false},
	TextPrimary:     {tokens.Primary100, false},
	TextBrand:       {tokens.Brand500, false},
}

var sizePresets = map[TextSize]tokens.TypeKey{
	TextSizeLabel:       tokens.TypeH4,
	TextSizeDescription: tokens.TypeParagraph,
	TextSizeHeader:      tokens.TypeH3,
	TextSizeButton:      tokens.TypeButton,
	TextSizeSm:          tokens.TypeSmall,
}

// ParseTextVariant accepts a variant name; empty means default.
func ParseTextVariant(s string) (TextVariant, error) {
	v := TextVariant(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return TextDefault, nil
	}
	if _, ok := textLooks[v]; !ok {
		return "", apperrors.NewConfigError(apperrors.KindEnum, s, "unknown text variant")
	}
	return v, nil
}

// TextOptions configures a Text.
type TextOptions struct {
	Variant      TextVariant
	Size         TextSize
	Align        lipgloss.Position
	Width        int
	Role         Role
	HeadingLevel int
	Label        string
}

// Text renders a themed run of text.
type Text struct {
	content string
	options TextOptions
}

// NewText creates a Text.
func NewText(content string, options TextOptions) *Text {
	if options.Variant == "" {
		options.Variant = TextDefault
	}
	if options.Size == "" {
		options.Size = TextSizeDefault
	}
	return &Text{content: content, options: options}
}

// Content returns the raw string.
func (t *Text) Content() string { return t.content }

// ColorKey returns the token the text is drawn with.
func (t *Text) ColorKey() tokens.ColorKey {
	return lookFor(t.options.Variant).color
}

// Style returns the lipgloss style for ctx.
func (t *Text) Style(ctx RenderContext) lipgloss.Style {
	look := lookFor(t.options.Variant)
	style := Style(ctx, lipgloss.NewStyle(), Foreground(look.color)).Bold(look.bold)
	if preset, ok := sizePresets[t.options.Size]; ok {
		style = Typography(preset).Apply(style, ctx)
	}
	if t.options.Width > 0 {
		style = style.Width(t.options.Width).Align(t.options.Align)
	}
	return style
}

// View renders the text.
func (t *Text) View(ctx RenderContext) string {
	return t.Style(ctx).Render(t.content)
}

// Accessibility describes the text. Headers with a level announce it.
func (t *Text) Accessibility() Accessibility {
	role := t.options.Role
	if role == "" {
		switch t.options.Variant {
		case TextHeader:
			role = RoleHeader
		case TextButton:
			role = RoleButton
		default:
			role = RoleText
		}
	}
	label := t.options.Label
	if label == "" {
		label = t.content
		if t.options.Variant == TextHeader && t.options.HeadingLevel > 0 {
			label = headingLabel(t.options.HeadingLevel, t.content)
		}
	}
	return Accessibility{Role: role, Label: label}
}

func lookFor(v TextVariant) textLook {
	if look, ok := textLooks[v]; ok {
		return look
	}
	return textLooks[TextDefault]
}

// Orientation lays out a TextGroup.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// TextGroup pairs a label with a description.
type TextGroup struct {
	Orientation Orientation
	Label       string
	Description string
}

// View renders the group. Horizontal groups put the description first.
func (g TextGroup) View(ctx RenderContext) string {
	label := NewText(g.Label, TextOptions{Variant: TextLabel, Size: TextSizeLabel})
	desc := NewText(g.Description, TextOptions{Variant: TextDescription, Size: TextSizeDescription})

	if g.Orientation == Horizontal {
		var parts []string
		if g.Description != "" {
			parts = append(parts, desc.View(ctx))
		}
		if g.Label != "" {
			parts = append(parts, label.View(ctx))
		}
		return strings.Join(parts, ctx.Fill().Render(" "))
	}

	var lines []string
	if g.Label != "" {
		lines = append(lines, label.View(ctx))
	}
	if g.Description != "" {
		lines = append(lines, desc.View(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Accessibility announces "label, description" or whichever part is present.
func (g TextGroup) Accessibility() Accessibility {
	var label string
	switch {
	case g.Label != "" && g.Description != "":
		label = g.Label + ", " + g.Description
	case g.Label != "":
		label = g.Label
	default:
		label = g.Description
	}
	return Accessibility{Role: RoleGroup, Label: label}
}

// HeaderOptions configures a TextHeader.
type HeaderOptions struct {
	Title        string
	HeadingLevel int
	Icon         string
	Width        int
}

// TextHeaderView is a title row with an optional action glyph on the right.
type TextHeaderView struct {
	options HeaderOptions
	action  *Button
}

// NewTextHeader creates a header. A non-nil action makes the icon pressable.
func NewTextHeader(options HeaderOptions, action *Button) *TextHeaderView {
	if options.HeadingLevel == 0 {
		options.HeadingLevel = 1
	}
	return &TextHeaderView{options: options, action: action}
}

// Action returns the pressable icon, if any.
func (h *TextHeaderView) Action() *Button { return h.action }

// View renders the header.
func (h *TextHeaderView) View(ctx RenderContext) string {
	title := NewText(h.options.Title, TextOptions{Variant: TextHeader, Size: TextSizeHeader, HeadingLevel: h.options.HeadingLevel}).View(ctx)

	var icon string
	switch {
	case h.action != nil:
		icon = h.action.View(ctx)
	case h.options.Icon != "":
		icon = Style(ctx, lipgloss.NewStyle(), Foreground(tokens.Foreground100)).Render(h.options.Icon)
	}
	if icon == "" {
		return title
	}

	spacer := 1
	if h.options.Width > 0 {
		if free := h.options.Width - lipgloss.Width(title) - lipgloss.Width(icon); free > spacer {
			spacer = free
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", spacer), icon)
}

// Accessibility announces the heading level and title.
func (h *TextHeaderView) Accessibility() Accessibility {
	return Accessibility{Role: RoleHeader, Label: headingLabel(h.options.HeadingLevel, h.options.Title)}
}
