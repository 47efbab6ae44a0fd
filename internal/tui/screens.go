package tui

import (
	"github.com/alexisbeaulieu97/themekit/internal/components"
	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

// contentWidth is the screen width in columns, the footprint of a large card.
var contentWidth = components.Cols(384)

// control is anything on a screen that can take focus and be pressed.
type control interface {
	Machine() *interaction.Machine
	View(ctx components.RenderContext) string
	Accessibility() components.Accessibility
}

// block is one vertical slot of a screen. Static blocks have no control;
// a block may render something larger than its control, like a header that
// carries an action button.
type block struct {
	label   string
	render  func(components.RenderContext) string
	control control
}

func (b block) view(ctx components.RenderContext) string {
	if b.render != nil {
		return b.render(ctx)
	}
	return b.control.View(ctx)
}

// screenBuilder wires every control to the shared feedback collaborator.
type screenBuilder struct {
	feedback *interaction.Feedback
	onToggle func()
}

func (s screenBuilder) opts(extra ...interaction.Option) []interaction.Option {
	opts := append([]interaction.Option{}, extra...)
	if s.feedback != nil {
		opts = append(opts, interaction.WithFeedback(*s.feedback))
	}
	return opts
}

func (s screenBuilder) button(label string, options components.ButtonOptions) block {
	options.Label = label
	return block{label: label, control: components.NewButton(options, s.opts()...)}
}

func section(title string) block {
	header := components.NewTextHeader(components.HeaderOptions{Title: title, HeadingLevel: 2, Width: contentWidth}, nil)
	return block{label: title, render: header.View}
}

func (s screenBuilder) home() []block {
	var toggle []interaction.Option
	if s.onToggle != nil {
		toggle = append(toggle, interaction.OnActivate(s.onToggle))
	}
	action := components.NewButton(components.ButtonOptions{
		Style:     variant.StyleLink,
		Variant:   variant.VariantSecondary,
		Label:     "Toggle theme",
		HideLabel: true,
		Leading:   "◐",
	}, s.opts(toggle...)...)
	greeting := components.NewTextHeader(components.HeaderOptions{Title: "Hola, James", Width: contentWidth}, action)

	card := components.NewCard(components.DefaultCardData()).WithInteraction(s.opts()...)

	blocks := []block{
		{label: "Toggle theme", render: greeting.View, control: action},
		{label: "Card", control: card},
		section("All Transactions"),
	}
	for _, tx := range sampleTransactions() {
		tx.Width = contentWidth
		tx.Interactive = true
		blocks = append(blocks, block{label: tx.Title, control: components.NewListItem(tx, s.opts()...)})
	}
	blocks = append(blocks, s.button("View All Transactions", components.ButtonOptions{Size: variant.SizeLarge}))
	return blocks
}

func sampleTransactions() []components.ListItemOptions {
	return []components.ListItemOptions{
		{
			Icon:     components.IconGroup{Tone: components.IconRed, Glyph: "☕", Description: "Food and drink"},
			Title:    "Starbucks",
			Subtitle: "Today, 09:12",
			Amount:   "-$6.50",
			Currency: "HKD",
		},
		{
			Icon:     components.IconGroup{Tone: components.IconGreen, Glyph: "$", Description: "Income"},
			Title:    "Salary",
			Subtitle: "Yesterday",
			Amount:   "+$12,000.00",
			Currency: "HKD",
		},
		{
			Icon:     components.IconGroup{Tone: components.IconBlue, Glyph: "✈", Description: "Travel"},
			Title:    "Cathay Pacific",
			Subtitle: "12 Oct",
			Amount:   "-$3,240.00",
			Currency: "HKD",
		},
	}
}

func (s screenBuilder) buttons() []block {
	return []block{
		section("Primary"),
		s.button("Default", components.ButtonOptions{}),
		s.button("Large", components.ButtonOptions{Size: variant.SizeLarge}),
		s.button("Leading icon", components.ButtonOptions{Leading: "+"}),
		s.button("Loading", components.ButtonOptions{Loading: true}),
		s.button("Disabled", components.ButtonOptions{Disabled: true}),

		section("Secondary"),
		s.button("Default", components.ButtonOptions{Variant: variant.VariantSecondary}),
		s.button("Large", components.ButtonOptions{Variant: variant.VariantSecondary, Size: variant.SizeLarge}),
		s.button("Icon", components.ButtonOptions{Variant: variant.VariantSecondary, Leading: "⚙"}),

		section("Link"),
		s.button("Brand link", components.ButtonOptions{Style: variant.StyleSecondary, Variant: variant.VariantLink}),
		s.button("Link with icon", components.ButtonOptions{Style: variant.StyleLink, Variant: variant.VariantSecondary, Trailing: "→"}),
	}
}
