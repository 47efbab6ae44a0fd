package components

import "strings"

// Role names what assistive technology should announce for a component.
type Role string

const (
	RoleText   Role = "text"
	RoleHeader Role = "header"
	RoleButton Role = "button"
	RoleGroup  Role = "group"
	RoleImage  Role = "image"
	RoleNone   Role = "none"
)

// Accessibility is the screen-reader description of a component.
type Accessibility struct {
	Role     Role
	Label    string
	Hint     string
	Disabled bool
	Busy     bool
	Selected bool
	Hidden   bool
}

// String renders a one-line announcement, e.g. "button: Save (busy)".
func (a Accessibility) String() string {
	if a.Hidden {
		return ""
	}
	var b strings.Builder
	b.WriteString(string(a.Role))
	if a.Label != "" {
		b.WriteString(": ")
		b.WriteString(a.Label)
	}
	var flags []string
	if a.Disabled {
		flags = append(flags, "disabled")
	}
	if a.Busy {
		flags = append(flags, "busy")
	}
	if a.Selected {
		flags = append(flags, "selected")
	}
	if len(flags) > 0 {
		b.WriteString(" (" + strings.Join(flags, ", ") + ")")
	}
	if a.Hint != "" {
		b.WriteString(". " + a.Hint)
	}
	return b.String()
}

func headingLabel(level int, title string) string {
	if level < 1 || level > 6 {
		return title
	}
	return "Heading level " + string(rune('0'+level)) + ", " + title
}
