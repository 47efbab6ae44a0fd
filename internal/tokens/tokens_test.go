package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestGetReturnsBothSets(t *testing.T) {
	for _, name := range Names() {
		set, err := Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, set.Name())
	}
}

func TestGetRejectsUnknownTheme(t *testing.T) {
	_, err := Get(Name("sepia"))

	var cfgErr *apperrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, apperrors.KindTheme, cfgErr.Kind)
	assert.Panics(t, func() { MustGet("sepia") })
}

func TestParseName(t *testing.T) {
	n, err := ParseName(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, n)

	_, err = ParseName("system")
	assert.Error(t, err, "system is a mode, not a token set")
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, Dark, Light.Opposite())
	assert.Equal(t, Light, Dark.Opposite())
}

func TestParity(t *testing.T) {
	require.NoError(t, CheckParity())
	assert.Equal(t, MustGet(Light).ColorKeys(), MustGet(Dark).ColorKeys())
}

func TestParityReportsMissingKeys(t *testing.T) {
	a := &Set{name: Light, colors: map[ColorKey]Color{"brand-400": "#1FE2D9", "extra-100": "#000000"}}
	b := &Set{name: Dark, colors: map[ColorKey]Color{"brand-400": "#1FE2D9"}}

	err := checkParity(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra-100 missing in dark")
}

func TestSetsDefineEnoughColourTokens(t *testing.T) {
	assert.GreaterOrEqual(t, len(MustGet(Light).ColorKeys()), 80)
}

func TestUndefinedColourFailsLoudly(t *testing.T) {
	set := MustGet(Light)

	_, err := set.Color("brand-1000")
	var cfgErr *apperrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, apperrors.KindToken, cfgErr.Kind)

	assert.Panics(t, func() { set.MustColor("brand-1000") })
}

func TestKnownValues(t *testing.T) {
	light := MustGet(Light)
	dark := MustGet(Dark)

	assert.Equal(t, Color("#1FE2D9"), light.MustColor(Brand400))
	assert.Equal(t, Color("#09090B"), light.MustColor(Static100))
	assert.Equal(t, Color("#18181B"), light.MustColor(Primary100))
	assert.Equal(t, Color("#FAFAFA"), dark.MustColor(Primary100))
	assert.Equal(t, Color("#F4F4F5CC"), light.MustColor(Secondary80))
	assert.Equal(t, Color("#18181B1A"), light.MustColor(Primary10))
}

func TestAllColoursParse(t *testing.T) {
	for _, name := range Names() {
		set := MustGet(name)
		for _, key := range set.ColorKeys() {
			_, _, err := set.MustColor(key).RGBA()
			assert.NoError(t, err, "%s/%s", name, key)
		}
	}
}

func TestSpacingRadiusTypography(t *testing.T) {
	set := MustGet(Dark)

	v, err := set.Spacing(4)
	require.NoError(t, err)
	assert.Equal(t, 16, v)

	v, err = set.Spacing(12)
	require.NoError(t, err)
	assert.Equal(t, 48, v)

	_, err = set.Spacing(13)
	assert.Error(t, err)

	r, err := set.Radius(RadiusFull)
	require.NoError(t, err)
	assert.Equal(t, 9999, r)

	_, err = set.Radius("rounded-3xl")
	assert.Error(t, err)

	h3 := set.MustTypography(TypeH3)
	assert.Equal(t, 24, h3.Size)
	assert.True(t, h3.Bold())
	assert.False(t, set.MustTypography(TypeParagraph).Bold())
}

func TestColorFade(t *testing.T) {
	assert.Equal(t, Color("#808080"), Color("#000000").Fade("#FFFFFF", 0.5))
	assert.Equal(t, Color("#000000"), Color("#000000").Fade("#FFFFFF", 1))
	assert.Equal(t, Color("#ffffff"), Transparent.Fade("#FFFFFF", 0.5))
}

func TestColorCompositeUsesAlpha(t *testing.T) {
	half := Color("#00000080").Composite("#FFFFFF")
	assert.Equal(t, Color("#7f7f7f"), half)

	opaque := Color("#1FE2D9").Composite("#000000")
	assert.Equal(t, Color("#1fe2d9"), opaque)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#e4e4e7", Color("#E4E4E7CC").Hex())
	assert.Equal(t, "", Transparent.Hex())
	assert.Equal(t, "", Color("blue").Hex())
}
