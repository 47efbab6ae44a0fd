package tokens

// SpacingSteps is the number of entries in the spacing scale (0..12).
const SpacingSteps = 13

func defaultSpacing() [SpacingSteps]int {
	var table [SpacingSteps]int
	for i := range table {
		table[i] = i * 4
	}
	return table
}

// RadiusKey names a corner radius token.
type RadiusKey string

const (
	RadiusSm   RadiusKey = "rounded-sm"
	RadiusMd   RadiusKey = "rounded-md"
	RadiusLg   RadiusKey = "rounded-lg"
	RadiusXl   RadiusKey = "rounded-xl"
	RadiusFull RadiusKey = "rounded-full"
)

func defaultRadius() map[RadiusKey]int {
	return map[RadiusKey]int{
		RadiusSm:   4,
		RadiusMd:   6,
		RadiusLg:   8,
		RadiusXl:   12,
		RadiusFull: 9999,
	}
}

// TypeKey names a typography preset.
type TypeKey string

const (
	TypeH3        TypeKey = "h3"
	TypeH4        TypeKey = "h4"
	TypeParagraph TypeKey = "paragraph"
	TypeSmall     TypeKey = "small"
	TypeButton    TypeKey = "button"
)

// Font families.
const (
	FontRegular  = "PlusJakartaSans-Regular"
	FontMedium   = "PlusJakartaSans-Medium"
	FontSemibold = "PlusJakartaSans-SemiBold"
	FontBold     = "PlusJakartaSans-Bold"
)

// TypeStyle is one typography preset.
type TypeStyle struct {
	FontFamily    string
	Size          int
	Weight        int
	LineHeight    int
	LetterSpacing float64
}

// Bold reports whether the preset renders heavier than medium weight.
func (t TypeStyle) Bold() bool {
	return t.Weight >= 600
}

func defaultTypography() map[TypeKey]TypeStyle {
	return map[TypeKey]TypeStyle{
		TypeH3:        {FontFamily: FontSemibold, Size: 24, Weight: 600, LineHeight: 32, LetterSpacing: -0.6},
		TypeH4:        {FontFamily: FontSemibold, Size: 20, Weight: 600, LineHeight: 28, LetterSpacing: -0.5},
		TypeParagraph: {FontFamily: FontRegular, Size: 16, Weight: 400, LineHeight: 28},
		TypeSmall:     {FontFamily: FontMedium, Size: 14, Weight: 500, LineHeight: 14},
		TypeButton:    {FontFamily: FontBold, Size: 14, Weight: 700, LineHeight: 14},
	}
}
