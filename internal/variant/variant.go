// Package variant resolves a component's declared configuration (style
// family, role variant, size and interaction state) plus the active token set
// into concrete visual attributes.
//
// Resolution is a pure function over closed enumerations: a base style, a
// size override, a (style, variant, state) lookup table and a final
// cross-cutting disabled-opacity pass. Nothing is cached.
package variant

import (
	"strings"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// StyleFamily selects the visual family of a control.
type StyleFamily int

const (
	StyleDefault StyleFamily = iota
	StyleLink
	StyleSecondary
)

// RoleVariant selects the role of a control within its family.
type RoleVariant int

const (
	VariantPrimary RoleVariant = iota
	VariantSecondary
	VariantLink
)

// Size selects horizontal padding.
type Size int

const (
	SizeDefault Size = iota
	SizeLarge
)

// State is the single derived interaction state.
type State int

const (
	StateDefault State = iota
	StatePressed
	StateFocus
	StateDisabled
	StateLoading
)

var (
	styleNames   = []string{"default", "link", "secondary"}
	variantNames = []string{"primary", "secondary", "link"}
	sizeNames    = []string{"default", "large"}
	stateNames   = []string{"default", "pressed", "focus", "disabled", "loading"}
)

// Styles lists every style family.
func Styles() []StyleFamily { return []StyleFamily{StyleDefault, StyleLink, StyleSecondary} }

// Variants lists every role variant.
func Variants() []RoleVariant { return []RoleVariant{VariantPrimary, VariantSecondary, VariantLink} }

// Sizes lists every size.
func Sizes() []Size { return []Size{SizeDefault, SizeLarge} }

// States lists every interaction state.
func States() []State {
	return []State{StateDefault, StatePressed, StateFocus, StateDisabled, StateLoading}
}

func (s StyleFamily) String() string { return enumName(styleNames, int(s)) }
func (v RoleVariant) String() string { return enumName(variantNames, int(v)) }
func (s Size) String() string        { return enumName(sizeNames, int(s)) }
func (s State) String() string       { return enumName(stateNames, int(s)) }

// MarshalText lets enums print by name in YAML output.
func (s StyleFamily) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (v RoleVariant) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (s Size) MarshalText() ([]byte, error)        { return []byte(s.String()), nil }
func (s State) MarshalText() ([]byte, error)       { return []byte(s.String()), nil }

// ParseStyle converts a style family name.
func ParseStyle(s string) (StyleFamily, error) {
	i, err := parseEnum("style", styleNames, s)
	return StyleFamily(i), err
}

// ParseVariant converts a role variant name.
func ParseVariant(s string) (RoleVariant, error) {
	i, err := parseEnum("variant", variantNames, s)
	return RoleVariant(i), err
}

// ParseSize converts a size name.
func ParseSize(s string) (Size, error) {
	i, err := parseEnum("size", sizeNames, s)
	return Size(i), err
}

// ParseState converts a state name.
func ParseState(s string) (State, error) {
	i, err := parseEnum("state", stateNames, s)
	return State(i), err
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func parseEnum(kind string, names []string, s string) (int, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return 0, nil
	}
	for i, name := range names {
		if name == needle {
			return i, nil
		}
	}
	return 0, apperrors.NewConfigError(apperrors.KindEnum, s, "unknown "+kind+", expected one of "+strings.Join(names, ", "))
}
