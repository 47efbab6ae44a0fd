package tokens

import "fmt"

// ColorKey names a colour token, e.g. "brand-400" or "secondary-foreground-100".
type ColorKey string

// Keys referenced directly by the resolver and components.
const (
	Border100              ColorKey = "border-100"
	Ring100                ColorKey = "ring-100"
	Background100          ColorKey = "background-100"
	Static100              ColorKey = "static-100"
	Foreground100          ColorKey = "foreground-100"
	Primary100             ColorKey = "primary-100"
	PrimaryForeground100   ColorKey = "primary-foreground-100"
	Secondary100           ColorKey = "secondary-100"
	Secondary80            ColorKey = "secondary-80"
	SecondaryForeground100 ColorKey = "secondary-foreground-100"
	Destructive100         ColorKey = "destructive-100"
	Muted100               ColorKey = "muted-100"
	MutedForeground100     ColorKey = "muted-foreground-100"
	AccentForeground100    ColorKey = "accent-foreground-100"
	Card100                ColorKey = "card-100"
	CardForeground100      ColorKey = "card-foreground-100"
	Foreground50           ColorKey = "foreground-50"
	Primary10              ColorKey = "primary-10"

	Brand200 ColorKey = "brand-200"
	Brand300 ColorKey = "brand-300"
	Brand400 ColorKey = "brand-400"
	Brand500 ColorKey = "brand-500"
	Brand700 ColorKey = "brand-700"

	Red100   ColorKey = "red-100"
	Red800   ColorKey = "red-800"
	Green100 ColorKey = "green-100"
	Green800 ColorKey = "green-800"
	Blue100  ColorKey = "blue-100"
	Blue800  ColorKey = "blue-800"
)

// alphaSuffix maps an opacity step to the hex alpha byte appended to a base colour.
var alphaSuffix = map[int]string{
	100: "",
	90:  "E5",
	80:  "CC",
	50:  "80",
	40:  "66",
	20:  "33",
	10:  "1A",
}

type palette map[ColorKey]Color

// tone adds "<family>-<step>" for each opacity step, all derived from one base hex.
func (p palette) tone(family string, base string, steps ...int) {
	for _, step := range steps {
		suffix, ok := alphaSuffix[step]
		if !ok {
			panic(fmt.Sprintf("tokens: no alpha for step %d", step))
		}
		p[ColorKey(fmt.Sprintf("%s-%d", family, step))] = Color(base + suffix)
	}
}

// scale adds a full 50..950 colour scale.
func (p palette) scale(family string, shades [11]string) {
	steps := [11]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	for i, step := range steps {
		p[ColorKey(fmt.Sprintf("%s-%d", family, step))] = Color(shades[i])
	}
}

func (p palette) scales() {
	p.scale("blue", [11]string{"#F0F9FF", "#E0F2FE", "#BAE2FD", "#7DC9FC", "#7DC9FC", "#0E91E9", "#0278C7", "#0362A1", "#075385", "#0C476E", "#082F49"})
	p.scale("red", [11]string{"#FEF4F2", "#FFE8E4", "#FFD0C8", "#FFB0A2", "#FD816C", "#F5593E", "#E33D20", "#BF2F16", "#9D2B17", "#832A1A", "#471108"})
	p.scale("green", [11]string{"#ECFDF4", "#D1FAE5", "#A7F3CC", "#6EE7A9", "#34D382", "#10B962", "#05964C", "#04783D", "#065F31", "#064E29", "#022C16"})
	p.scale("brand", [11]string{"#EFFEFC", "#C8FFF7", "#91FEF2", "#5BF6EA", "#1FE2D9", "#06C6C0", "#029F9E", "#077E7E", "#0B6264", "#0E5253", "#003133"})
}

func lightColors() map[ColorKey]Color {
	p := palette{}
	p.tone("border", "#E4E4E7", 100, 90, 80)
	p.tone("input", "#E4E4E7", 100, 90, 80)
	p.tone("ring", "#18181B", 100, 90, 80)
	p.tone("background", "#FFFFFF", 100, 90, 80)
	p.tone("static", "#09090B", 100)
	p.tone("foreground", "#09090B", 100, 90, 80, 50)
	p.tone("primary", "#18181B", 100, 90, 80, 50, 20, 10)
	p.tone("primary-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("secondary", "#F4F4F5", 100, 90, 80)
	p.tone("secondary-foreground", "#18181B", 100, 90, 80)
	p.tone("destructive", "#EF4444", 100, 90, 80, 50)
	p.tone("destructive-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("muted", "#F4F4F5", 100, 90, 80, 50, 40)
	p.tone("muted-foreground", "#71717A", 100, 90, 80)
	p.tone("accent", "#F4F4F5", 100, 90, 80, 50)
	p.tone("accent-foreground", "#18181B", 100, 90, 80)
	p.tone("popover", "#FFFFFF", 100, 90, 80)
	p.tone("popover-foreground", "#09090B", 100, 90, 80)
	p.tone("card", "#FFFFFF", 100, 90, 80)
	p.tone("card-foreground", "#09090B", 100, 90, 80)
	p.scales()
	return p
}

func darkColors() map[ColorKey]Color {
	p := palette{}
	p.tone("border", "#27272A", 100, 90, 80)
	p.tone("input", "#27272A", 100, 90, 80)
	p.tone("ring", "#D4D4D8", 100, 90, 80)
	p.tone("background", "#09090B", 100, 90, 80)
	p.tone("static", "#09090B", 100)
	p.tone("foreground", "#FAFAFA", 100, 90, 80, 50)
	p.tone("primary", "#FAFAFA", 100, 90, 80, 50, 20, 10)
	p.tone("primary-foreground", "#18181B", 100, 90, 80)
	p.tone("secondary", "#27272A", 100, 90, 80)
	p.tone("secondary-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("destructive", "#7F1D1D", 100, 90, 80, 50)
	p.tone("destructive-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("muted", "#27272A", 100, 90, 80, 50, 40)
	p.tone("muted-foreground", "#A1A1AA", 100, 90, 80)
	p.tone("accent", "#27272A", 100, 90, 80, 50)
	p.tone("accent-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("popover", "#09090B", 100, 90, 80)
	p.tone("popover-foreground", "#FAFAFA", 100, 90, 80)
	p.tone("card", "#09090B", 100, 90, 80)
	p.tone("card-foreground", "#FAFAFA", 100, 90, 80)
	p.scales()
	return p
}
