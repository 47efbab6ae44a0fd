package tokens

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a hex colour value, "#RRGGBB" or "#RRGGBBAA", or Transparent.
type Color string

// Transparent paints nothing.
const Transparent Color = "transparent"

// IsTransparent reports whether c paints nothing.
func (c Color) IsTransparent() bool {
	return c == Transparent || c == ""
}

// RGBA splits c into its opaque colour and alpha in [0,1].
func (c Color) RGBA() (colorful.Color, float64, error) {
	if c.IsTransparent() {
		return colorful.Color{}, 0, nil
	}
	s := string(c)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return colorful.Color{}, 0, fmt.Errorf("invalid colour %q", s)
	}
	rgb, err := colorful.Hex(strings.ToLower(s[:7]))
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
	}
	return rgb, alpha, nil
}

// Composite flattens c onto an opaque surface, honouring c's alpha. The result
// is always an opaque "#rrggbb" value; a transparent c yields the surface.
func (c Color) Composite(surface Color) Color {
	return c.Fade(surface, 1)
}

// Fade composites c onto surface and then applies an additional opacity.
// Terminals have no alpha channel, so opacity is expressed by mixing toward
// the surface colour.
func (c Color) Fade(surface Color, opacity float64) Color {
	base, _, err := surface.RGBA()
	if err != nil || surface.IsTransparent() {
		return c
	}
	if c.IsTransparent() {
		return Color(base.Hex())
	}
	fg, alpha, err := c.RGBA()
	if err != nil {
		return c
	}
	mix := clamp01(alpha * opacity)
	return Color(base.BlendRgb(fg, mix).Clamped().Hex())
}

// Hex returns the opaque "#rrggbb" part of c, or "" when transparent.
func (c Color) Hex() string {
	if c.IsTransparent() {
		return ""
	}
	rgb, _, err := c.RGBA()
	if err != nil {
		return ""
	}
	return rgb.Hex()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
