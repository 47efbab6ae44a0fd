// Package effect dispatches best-effort side effects such as persisting a
// preference or ringing the terminal bell. Results are never reported back to
// the caller; failures are logged and dropped. There is no retry.
package effect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// Func is one side effect.
type Func func(ctx context.Context) error

// Dispatcher runs side effects without blocking on their outcome.
type Dispatcher interface {
	Dispatch(name string, fn Func)
}

// DefaultTimeout bounds each asynchronous effect.
const DefaultTimeout = 5 * time.Second

// Async runs every effect on its own goroutine. Effects are not serialised, so
// two effects dispatched back to back may complete in either order.
type Async struct {
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewAsync creates an Async dispatcher. A zero timeout means DefaultTimeout.
func NewAsync(log *logger.Logger, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Async{log: log.WithComponent("effect"), timeout: timeout}
}

// Dispatch starts fn and returns immediately.
func (a *Async) Dispatch(name string, fn Func) {
	if fn == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		run(ctx, a.log, name, fn)
	}()
}

// Wait blocks until every dispatched effect has finished or ctx is done.
func (a *Async) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inline runs effects synchronously on the caller's goroutine. Useful in tests
// and short-lived commands where ordering must be observable.
type Inline struct {
	log *logger.Logger
}

// NewInline creates an Inline dispatcher.
func NewInline(log *logger.Logger) *Inline {
	return &Inline{log: log.WithComponent("effect")}
}

// Dispatch runs fn before returning. Its error is still only logged.
func (i *Inline) Dispatch(name string, fn Func) {
	if fn == nil {
		return
	}
	run(context.Background(), i.log, name, fn)
}

func run(ctx context.Context, log *logger.Logger, name string, fn Func) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]any{"effect": name}).Error(fmt.Errorf("panic: %v", r), "side effect panicked")
		}
	}()
	if err := fn(ctx); err != nil {
		log.WithFields(map[string]any{"effect": name}).Warn(err, "side effect failed")
		return
	}
	log.WithFields(map[string]any{"effect": name}).Debug("side effect completed")
}
