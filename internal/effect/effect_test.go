package effect

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log, buf
}

func TestInlineRunsBeforeReturning(t *testing.T) {
	log, _ := newBufferedLogger(t)
	d := NewInline(log)

	var order []string
	d.Dispatch("first", func(context.Context) error { order = append(order, "first"); return nil })
	d.Dispatch("second", func(context.Context) error { order = append(order, "second"); return nil })

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInlineLogsFailureWithoutPropagating(t *testing.T) {
	log, buf := newBufferedLogger(t)
	d := NewInline(log)

	require.NotPanics(t, func() {
		d.Dispatch("persist", func(context.Context) error { return errors.New("disk full") })
	})
	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), `"effect":"persist"`)
}

func TestInlineRecoversPanics(t *testing.T) {
	log, buf := newBufferedLogger(t)
	d := NewInline(log)

	require.NotPanics(t, func() {
		d.Dispatch("bell", func(context.Context) error { panic("no terminal") })
	})
	assert.Contains(t, buf.String(), "no terminal")
}

func TestAsyncDoesNotBlockCaller(t *testing.T) {
	d := NewAsync(logger.Nop(), time.Second)

	release := make(chan struct{})
	var ran atomic.Bool
	d.Dispatch("slow", func(context.Context) error {
		<-release
		ran.Store(true)
		return nil
	})

	assert.False(t, ran.Load(), "dispatch must return before the effect completes")
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
	assert.True(t, ran.Load())
}

func TestAsyncWaitHonoursContext(t *testing.T) {
	d := NewAsync(logger.Nop(), time.Minute)

	block := make(chan struct{})
	defer close(block)
	d.Dispatch("stuck", func(context.Context) error { <-block; return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Wait(ctx), context.DeadlineExceeded)
}

func TestAsyncAppliesTimeout(t *testing.T) {
	d := NewAsync(logger.Nop(), 5*time.Millisecond)

	var mu sync.Mutex
	var got error
	d.Dispatch("timeout", func(ctx context.Context) error {
		<-ctx.Done()
		mu.Lock()
		got = ctx.Err()
		mu.Unlock()
		return ctx.Err()
	})

	require.NoError(t, d.Wait(context.Background()))
	mu.Lock()
	defer mu.Unlock()
	assert.ErrorIs(t, got, context.DeadlineExceeded)
}
