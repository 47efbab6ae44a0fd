package platform

import (
	"context"
	"io"
	"sync"
	"time"
)

// Haptics produces a short physical or audible acknowledgement.
type Haptics interface {
	Vibrate(ctx context.Context, d time.Duration) error
}

const bel = "\a"

// Bell rings the terminal bell as the closest terminal analog to a vibration.
// The duration is ignored; terminals do not expose bell length.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell writes to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Vibrate implements Haptics.
func (b *Bell) Vibrate(ctx context.Context, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.out, bel)
	return err
}

// NoHaptics stands in for a missing haptics collaborator.
type NoHaptics struct{}

// Vibrate implements Haptics and does nothing.
func (NoHaptics) Vibrate(context.Context, time.Duration) error { return nil }
