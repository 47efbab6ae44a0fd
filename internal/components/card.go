package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

const (
	cardBorderWidth = 2
	cardPadding     = 24

	cardInk tokens.ColorKey = "brand-50"
)

// CardData represents the content of a payment card.
type CardData struct {
	Brand          string
	CardType       string
	Number         string
	HideNumber     bool
	Amount         string
	Currency       string
	AvailableLabel string
	Network        string
}

// DefaultCardData is the sample card shown on the home screen.
func DefaultCardData() CardData {
	return CardData{
		Brand:          "REAP",
		CardType:       "Physical",
		Number:         "•••• 4567",
		Amount:         "$24,000.00",
		Currency:       "HKD",
		AvailableLabel: "Available to spend",
		Network:        "VISA Platinum Business",
	}
}

// Card renders a payment card at one of two fixed sizes.
type Card struct {
	data        CardData
	size        variant.Size
	interactive bool
	machine     *interaction.Machine
}

// NewCard creates a card with the given data.
func NewCard(data CardData) *Card {
	return &Card{data: data, machine: interaction.New()}
}

// WithSize selects the default (320×192) or large (384×240) footprint.
func (c *Card) WithSize(size variant.Size) *Card {
	c.size = size
	return c
}

// WithInteraction makes the card pressable.
func (c *Card) WithInteraction(opts ...interaction.Option) *Card {
	c.interactive = true
	c.machine = interaction.New(opts...)
	return c
}

// Machine exposes the press lifecycle.
func (c *Card) Machine() *interaction.Machine { return c.machine }

// Interactive reports whether the card reacts to presses.
func (c *Card) Interactive() bool { return c.interactive }

// Dimensions returns the footprint in layout units.
func (c *Card) Dimensions() (width, height int) {
	if c.size == variant.SizeLarge {
		return 384, 240
	}
	return 320, 192
}

// View renders the card.
func (c *Card) View(ctx RenderContext) string {
	width, height := c.Dimensions()
	inner := ctx.OnSurface(tokens.Brand700)

	padX, padY := Cols(cardPadding), Rows(cardPadding)
	contentW := Cols(width) - 2 - 2*padX
	contentH := Rows(height) - 2 - 2*padY

	ink := func(bold bool) lipgloss.Style {
		return Style(inner, lipgloss.NewStyle(), Foreground(cardInk)).Bold(bold)
	}
	fill := inner.Fill()

	top := spread(fill, ink(true).Render(c.data.Brand), ink(false).Render(c.data.CardType), contentW)
	var number string
	if !c.data.HideNumber {
		number = ink(true).Render(c.data.Number)
	}
	available := ink(false).Render(fmt.Sprintf("%s (%s)", c.data.AvailableLabel, c.data.Currency))
	amount := ink(true).Render(c.data.Amount)
	network := fill.Width(contentW).Align(lipgloss.Right).Render(ink(true).Render(c.data.Network))

	lines := []string{top}
	for len(lines) < contentH/2-1 {
		lines = append(lines, "")
	}
	lines = append(lines, number)
	for len(lines) < contentH-3 {
		lines = append(lines, "")
	}
	lines = append(lines, available, amount, network)

	frame := c.frame()
	box := Style(ctx, fill, Border(cardBorderWidth, frame)).
		Padding(padY, padX).
		Width(contentW + 2*padX).
		Height(contentH + 2*padY)
	return box.Render(strings.Join(lines, "\n"))
}

func (c *Card) frame() tokens.ColorKey {
	if c.interactive && c.machine.Focused() {
		return tokens.Brand400
	}
	return tokens.Border100
}

// NumberLabel announces only the last four digits.
func (c *Card) NumberLabel() string {
	digits := []rune(c.data.Number)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "Card ending in " + string(digits)
}

// Accessibility describes the card.
func (c *Card) Accessibility() Accessibility {
	d := c.data
	if c.interactive {
		return Accessibility{
			Role:  RoleButton,
			Label: fmt.Sprintf("%s %s card button, %s %s %s", d.Brand, d.CardType, d.AvailableLabel, d.Amount, d.Currency),
			Hint:  "Double tap to view card details",
		}
	}
	return Accessibility{
		Role:  RoleGroup,
		Label: fmt.Sprintf("%s %s card, %s %s %s", d.Brand, d.CardType, d.AvailableLabel, d.Amount, d.Currency),
	}
}

// spread places left and right at the edges of width.
func spread(fill lipgloss.Style, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + fill.Render(strings.Repeat(" ", gap)) + right
}
