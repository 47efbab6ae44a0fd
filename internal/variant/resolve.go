package variant

import (
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Geometry shared by every button-like control, in device-independent units.
const (
	MinTouchTarget   = 48
	PaddingYDefault  = 8
	PaddingXDefault  = 16
	PaddingXLarge    = 32
	ContentGap       = 8
	DisabledOpacity  = 0.5
	FocusBorderWidth = 2
)

// Config is the declared identity of one control plus its live interaction inputs.
type Config struct {
	Style       StyleFamily
	Variant     RoleVariant
	Size        Size
	Interaction Interaction
}

// Patch is the colour and border contribution of one (style, variant, state)
// entry. An empty Background means transparent; BorderWidth 0 means no border.
type Patch struct {
	Background  tokens.ColorKey
	BorderWidth int
	Border      tokens.ColorKey
}

// Neutral is the patch for combinations the table does not list.
var Neutral = Patch{}

// Attributes is the fully resolved visual description of one control.
type Attributes struct {
	State         State
	Background    tokens.Color
	BackgroundKey tokens.ColorKey
	BorderWidth   int
	BorderColor   tokens.Color
	BorderKey     tokens.ColorKey
	TextColor     tokens.Color
	TextKey       tokens.ColorKey
	SpinnerColor  tokens.Color
	Opacity       float64
	PaddingX      int
	PaddingY      int
	MinWidth      int
	MinHeight     int
	Radius        int
	Gap           int
	Typography    tokens.TypeStyle
}

type combo struct {
	style   StyleFamily
	variant RoleVariant
}

type statePatches map[State]Patch

func uniform(p Patch, focus Patch) statePatches {
	return statePatches{
		StateDefault:  p,
		StatePressed:  p,
		StateFocus:    focus,
		StateDisabled: p,
		StateLoading:  p,
	}
}

var linkPatches = uniform(
	Patch{},
	Patch{BorderWidth: FocusBorderWidth, Border: tokens.Brand700},
)

var backgroundTable = map[combo]statePatches{
	{StyleDefault, VariantPrimary}: {
		StateDefault:  {Background: tokens.Brand400},
		StatePressed:  {Background: tokens.Brand200},
		StateFocus:    {Background: tokens.Brand400, BorderWidth: FocusBorderWidth, Border: tokens.Brand700},
		StateDisabled: {Background: tokens.Primary100},
		StateLoading:  {Background: tokens.Brand400},
	},
	{StyleDefault, VariantSecondary}: {
		StateDefault:  {Background: tokens.Secondary100, BorderWidth: 1, Border: tokens.Border100},
		StatePressed:  {Background: tokens.Secondary80, BorderWidth: 1, Border: tokens.Border100},
		StateFocus:    {Background: tokens.Secondary100, BorderWidth: 1, Border: tokens.Brand700},
		StateDisabled: {Background: tokens.Secondary100, BorderWidth: 1, Border: tokens.Border100},
		StateLoading:  {Background: tokens.Secondary100, BorderWidth: 1, Border: tokens.Border100},
	},
	{StyleLink, VariantSecondary}: linkPatches,
	{StyleSecondary, VariantLink}: linkPatches,
}

var textTable = map[combo]tokens.ColorKey{
	{StyleDefault, VariantPrimary}:   tokens.Static100,
	{StyleDefault, VariantSecondary}: tokens.SecondaryForeground100,
	{StyleLink, VariantSecondary}:    tokens.SecondaryForeground100,
	{StyleSecondary, VariantLink}:    tokens.Brand700,
}

// Lookup returns the patch for a combination in a given state. It is total:
// unlisted combinations get Neutral.
func Lookup(style StyleFamily, v RoleVariant, state State) Patch {
	patches, ok := backgroundTable[combo{style, v}]
	if !ok {
		return Neutral
	}
	p, ok := patches[state]
	if !ok {
		return Neutral
	}
	return p
}

// Listed reports whether the combination has its own table entry.
func Listed(style StyleFamily, v RoleVariant) bool {
	_, ok := backgroundTable[combo{style, v}]
	return ok
}

// TextKey returns the label colour token. Only the disabled state changes it;
// pressed and focus keep the combination's colour.
func TextKey(style StyleFamily, v RoleVariant, state State) tokens.ColorKey {
	if state == StateDisabled {
		return tokens.PrimaryForeground100
	}
	return SpinnerKey(style, v)
}

// SpinnerKey returns the loading indicator colour token, keyed like text.
func SpinnerKey(style StyleFamily, v RoleVariant) tokens.ColorKey {
	if key, ok := textTable[combo{style, v}]; ok {
		return key
	}
	return tokens.SecondaryForeground100
}

// Resolve produces the visual attributes for cfg against set.
func Resolve(cfg Config, set *tokens.Set) Attributes {
	attrs := base(set)

	applySize(&attrs, cfg.Size)

	state := ResolveState(cfg.Interaction)
	attrs.State = state

	p := Lookup(cfg.Style, cfg.Variant, state)
	applyPatch(&attrs, p, set)

	attrs.TextKey = TextKey(cfg.Style, cfg.Variant, state)
	attrs.TextColor = set.MustColor(attrs.TextKey)
	attrs.SpinnerColor = set.MustColor(SpinnerKey(cfg.Style, cfg.Variant))

	if state == StateDisabled {
		attrs.Opacity = DisabledOpacity
	}

	return attrs
}

func base(set *tokens.Set) Attributes {
	radius, err := set.Radius(tokens.RadiusFull)
	if err != nil {
		panic(err)
	}
	return Attributes{
		Background:  tokens.Transparent,
		BorderColor: tokens.Transparent,
		Opacity:     1,
		PaddingX:    PaddingXDefault,
		PaddingY:    PaddingYDefault,
		MinWidth:    MinTouchTarget,
		MinHeight:   MinTouchTarget,
		Radius:      radius,
		Gap:         ContentGap,
		Typography:  set.MustTypography(tokens.TypeButton),
	}
}

func applySize(attrs *Attributes, size Size) {
	switch size {
	case SizeLarge:
		attrs.PaddingX = PaddingXLarge
	default:
		attrs.PaddingX = PaddingXDefault
	}
	attrs.PaddingY = PaddingYDefault
}

func applyPatch(attrs *Attributes, p Patch, set *tokens.Set) {
	if p.Background != "" {
		attrs.BackgroundKey = p.Background
		attrs.Background = set.MustColor(p.Background)
	}
	attrs.BorderWidth = p.BorderWidth
	if p.BorderWidth > 0 && p.Border != "" {
		attrs.BorderKey = p.Border
		attrs.BorderColor = set.MustColor(p.Border)
	}
}
