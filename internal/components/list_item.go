package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/interaction"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

const (
	listItemMinHeight = 56
	listItemPaddingY  = 12
	listItemGap       = 8
)

// ListItemOptions configures a ListItem.
type ListItemOptions struct {
	Icon             IconGroup
	Title            string
	Subtitle         string
	Amount           string
	Currency         string
	RightLabel       string
	RightDescription string
	Width            int
	Interactive      bool
	Disabled         bool
}

// ListItem is a transaction-style row: icon and title on the left, amount on
// the right. Interactive rows have a press lifecycle.
type ListItem struct {
	options ListItemOptions
	machine *interaction.Machine
}

// NewListItem creates a row. opts configure the interaction machine used when
// the row is interactive.
func NewListItem(options ListItemOptions, opts ...interaction.Option) *ListItem {
	options.Icon.Decorative = false
	item := &ListItem{options: options, machine: interaction.New(opts...)}
	item.machine.SetDisabled(options.Disabled)
	return item
}

// Machine exposes the press lifecycle.
func (l *ListItem) Machine() *interaction.Machine { return l.machine }

// Interactive reports whether the row reacts to presses.
func (l *ListItem) Interactive() bool { return l.options.Interactive }

func (l *ListItem) right() (label, description string) {
	label = l.options.RightLabel
	if label == "" {
		label = l.options.Amount
	}
	description = l.options.RightDescription
	if description == "" {
		description = l.options.Currency
	}
	return label, description
}

// View renders the row.
func (l *ListItem) View(ctx RenderContext) string {
	state := l.machine.State()
	if l.options.Interactive {
		if state == variant.StatePressed {
			ctx = ctx.OnSurface(tokens.Primary10)
		}
		if state == variant.StateDisabled {
			ctx = ctx.WithOpacity(variant.DisabledOpacity)
		}
	}
	fill := ctx.Fill()
	gap := fill.Render(strings.Repeat(" ", Cols(listItemGap)))

	leftText := TextGroup{Label: l.options.Title, Description: l.options.Subtitle}.View(ctx)
	left := lipgloss.JoinHorizontal(lipgloss.Top, l.options.Icon.View(ctx), gap, leftText)

	rightLabel, rightDesc := l.right()
	right := TextGroup{Orientation: Horizontal, Label: rightLabel, Description: rightDesc}.View(ctx)

	spacer := Cols(listItemGap)
	if l.options.Width > 0 {
		if free := l.options.Width - lipgloss.Width(left) - lipgloss.Width(right); free > spacer {
			spacer = free
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, fill.Render(strings.Repeat(" ", spacer)), right)

	box := fill.PaddingTop(Rows(listItemPaddingY)).PaddingBottom(Rows(listItemPaddingY))
	if rows := Rows(listItemMinHeight); lipgloss.Height(row) < rows {
		box = box.Height(rows).AlignVertical(lipgloss.Center)
	}
	return box.Render(row)
}

// Accessibility labels the row with every visible field.
func (l *ListItem) Accessibility() Accessibility {
	label, desc := l.right()
	var parts []string
	for _, part := range []string{l.options.Title, l.options.Subtitle, strings.TrimSpace(label + " " + desc)} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	a := Accessibility{Role: RoleGroup, Label: strings.Join(parts, ", ")}
	if l.options.Interactive {
		a.Role = RoleButton
		a.Hint = "Double tap to select this item"
		a.Disabled = l.options.Disabled
		a.Selected = l.machine.Phase() == interaction.Pressed
	}
	return a
}
