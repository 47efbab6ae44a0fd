// Package tokens holds the static design token sets for the light and dark
// themes: colours, spacing, radii and typography presets.
//
// Sets are built once at package initialisation and never change. Lookups of
// names or keys outside the defined sets fail loudly with a configuration
// error instead of falling back to a default.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Name identifies one of the two token sets.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// Names lists every valid token set name.
func Names() []Name {
	return []Name{Light, Dark}
}

// Valid reports whether n is one of the two defined names.
func (n Name) Valid() bool {
	return n == Light || n == Dark
}

// Opposite returns the other theme name.
func (n Name) Opposite() Name {
	if n == Dark {
		return Light
	}
	return Dark
}

func (n Name) String() string {
	return string(n)
}

// ParseName converts s into a Name.
func ParseName(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !n.Valid() {
		return "", apperrors.NewConfigError(apperrors.KindTheme, s, "")
	}
	return n, nil
}

// Set is one theme's immutable collection of design values.
type Set struct {
	name       Name
	colors     map[ColorKey]Color
	spacing    [SpacingSteps]int
	radius     map[RadiusKey]int
	typography map[TypeKey]TypeStyle
}

var sets = map[Name]*Set{
	Light: {
		name:       Light,
		colors:     lightColors(),
		spacing:    defaultSpacing(),
		radius:     defaultRadius(),
		typography: defaultTypography(),
	},
	Dark: {
		name:       Dark,
		colors:     darkColors(),
		spacing:    defaultSpacing(),
		radius:     defaultRadius(),
		typography: defaultTypography(),
	},
}

// Get returns the token set for name.
func Get(name Name) (*Set, error) {
	set, ok := sets[name]
	if !ok {
		return nil, apperrors.NewConfigError(apperrors.KindTheme, string(name), "")
	}
	return set, nil
}

// MustGet is Get for names known to be valid.
func MustGet(name Name) *Set {
	set, err := Get(name)
	if err != nil {
		panic(err)
	}
	return set
}

// Name returns the theme this set belongs to.
func (s *Set) Name() Name {
	return s.name
}

// Color looks up a colour token.
func (s *Set) Color(key ColorKey) (Color, error) {
	c, ok := s.colors[key]
	if !ok {
		return "", apperrors.NewConfigError(apperrors.KindToken, string(key), fmt.Sprintf("not defined in %s set", s.name))
	}
	return c, nil
}

// MustColor is Color for keys that are compile-time constants. An unknown key
// is a programmer error and panics.
func (s *Set) MustColor(key ColorKey) Color {
	c, err := s.Color(key)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorKeys returns every colour key in the set, sorted.
func (s *Set) ColorKeys() []ColorKey {
	keys := make([]ColorKey, 0, len(s.colors))
	for key := range s.colors {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Spacing returns the size of spacing step n (0..12) in units.
func (s *Set) Spacing(step int) (int, error) {
	if step < 0 || step >= SpacingSteps {
		return 0, apperrors.NewConfigError(apperrors.KindToken, fmt.Sprintf("spacing-%d", step), "")
	}
	return s.spacing[step], nil
}

// Radius looks up a radius token.
func (s *Set) Radius(key RadiusKey) (int, error) {
	r, ok := s.radius[key]
	if !ok {
		return 0, apperrors.NewConfigError(apperrors.KindToken, string(key), "")
	}
	return r, nil
}

// Typography looks up a typography preset.
func (s *Set) Typography(key TypeKey) (TypeStyle, error) {
	t, ok := s.typography[key]
	if !ok {
		return TypeStyle{}, apperrors.NewConfigError(apperrors.KindToken, string(key), "")
	}
	return t, nil
}

// MustTypography is Typography for compile-time keys.
func (s *Set) MustTypography(key TypeKey) TypeStyle {
	t, err := s.Typography(key)
	if err != nil {
		panic(err)
	}
	return t
}

// CheckParity verifies that the light and dark sets define the same keys.
func CheckParity() error {
	return checkParity(sets[Light], sets[Dark])
}

func checkParity(a, b *Set) error {
	var missing []string
	for key := range a.colors {
		if _, ok := b.colors[key]; !ok {
			missing = append(missing, fmt.Sprintf("%s missing in %s", key, b.name))
		}
	}
	for key := range b.colors {
		if _, ok := a.colors[key]; !ok {
			missing = append(missing, fmt.Sprintf("%s missing in %s", key, a.name))
		}
	}
	for key := range a.radius {
		if _, ok := b.radius[key]; !ok {
			missing = append(missing, fmt.Sprintf("%s missing in %s", key, b.name))
		}
	}
	for key := range a.typography {
		if _, ok := b.typography[key]; !ok {
			missing = append(missing, fmt.Sprintf("%s missing in %s", key, b.name))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return apperrors.NewConfigError(apperrors.KindToken, "parity", strings.Join(missing, "; "))
}
