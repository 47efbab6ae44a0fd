package platform

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

func TestStaticSourceNotifiesOnChange(t *testing.T) {
	src := NewStaticSource(tokens.Light)

	var got []tokens.Name
	unsubscribe := src.Subscribe(func(n tokens.Name) { got = append(got, n) })

	src.Set(tokens.Light)
	src.Set(tokens.Dark)
	assert.Equal(t, tokens.Dark, src.Scheme())

	unsubscribe()
	src.Set(tokens.Light)

	assert.Equal(t, []tokens.Name{tokens.Dark}, got)
}

func TestStaticSourceNilSubscriber(t *testing.T) {
	src := NewStaticSource("")
	unsubscribe := src.Subscribe(nil)
	assert.NotPanics(t, func() {
		src.Set(tokens.Dark)
		unsubscribe()
	})
}

func TestDetectTerminalWithoutTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, tokens.Name(""), DetectTerminal(&buf).Scheme())
}

func TestFromSetting(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, tokens.Light, FromSetting("light", &buf).Scheme())
	assert.Equal(t, tokens.Dark, FromSetting("dark", &buf).Scheme())
	assert.Equal(t, tokens.Name(""), FromSetting("none", &buf).Scheme())
	assert.Equal(t, tokens.Name(""), FromSetting("auto", &buf).Scheme())
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	require.NoError(t, bell.Vibrate(context.Background(), 50*time.Millisecond))
	assert.Equal(t, "\a", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, bell.Vibrate(ctx, time.Millisecond), context.Canceled)
}

func TestNoHaptics(t *testing.T) {
	assert.NoError(t, NoHaptics{}.Vibrate(context.Background(), time.Second))
}
