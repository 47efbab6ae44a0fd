// Package interaction implements the press lifecycle shared by every
// pressable control: press in, press out or cancel, and release. A release
// that is not inert emits one activation and one best-effort haptic pulse.
package interaction

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/effect"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/platform"
	"github.com/alexisbeaulieu97/themekit/internal/variant"
)

// Phase is the press phase of a control.
type Phase int

const (
	Idle Phase = iota
	Pressed
)

func (p Phase) String() string {
	if p == Pressed {
		return "pressed"
	}
	return "idle"
}

// DefaultHapticDuration is the pulse length requested on activation.
const DefaultHapticDuration = 50 * time.Millisecond

// Feedback bundles the haptics collaborator with the dispatcher that runs it.
// A nil Haptics disables feedback. A nil Dispatcher runs pulses inline,
// logging failures to Log.
type Feedback struct {
	Haptics    platform.Haptics
	Dispatcher effect.Dispatcher
	Duration   time.Duration
	Log        *logger.Logger
}

// Machine tracks one control's press phase and its live flags.
type Machine struct {
	phase    Phase
	focused  bool
	disabled bool
	loading  bool
	haptics  bool

	requested  variant.State
	feedback   Feedback
	onActivate func()
}

// Option configures a Machine.
type Option func(*Machine)

// WithFeedback enables haptic feedback on activation.
func WithFeedback(fb Feedback) Option {
	if fb.Dispatcher == nil {
		fb.Dispatcher = effect.NewInline(fb.Log)
	}
	return func(m *Machine) {
		m.feedback = fb
		m.haptics = fb.Haptics != nil
	}
}

// OnActivate sets the activation callback.
func OnActivate(fn func()) Option {
	return func(m *Machine) { m.onActivate = fn }
}

// WithRequestedState sets the caller-declared state that live inputs may override.
func WithRequestedState(s variant.State) Option {
	return func(m *Machine) { m.requested = s }
}

// New creates an idle machine.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Phase returns the current press phase.
func (m *Machine) Phase() Phase { return m.phase }

// Interaction returns the live inputs for variant.ResolveState.
func (m *Machine) Interaction() variant.Interaction {
	return variant.Interaction{
		Requested: m.requested,
		Focused:   m.focused,
		Pressed:   m.phase == Pressed,
		Disabled:  m.disabled,
		Loading:   m.loading,
	}
}

// State resolves the machine's inputs to a single state.
func (m *Machine) State() variant.State {
	return variant.ResolveState(m.Interaction())
}

// Inert reports whether presses are currently ignored.
func (m *Machine) Inert() bool {
	return m.State().Inert()
}

// SetFocused updates the focus flag.
func (m *Machine) SetFocused(focused bool) { m.focused = focused }

// Focused reports the focus flag.
func (m *Machine) Focused() bool { return m.focused }

// SetDisabled updates the disabled flag. Disabling cancels a press in flight.
func (m *Machine) SetDisabled(disabled bool) {
	m.disabled = disabled
	if m.Inert() {
		m.phase = Idle
	}
}

// SetLoading updates the loading flag. Loading cancels a press in flight.
func (m *Machine) SetLoading(loading bool) {
	m.loading = loading
	if m.Inert() {
		m.phase = Idle
	}
}

// SetHaptics toggles feedback for a machine that has a haptics collaborator.
func (m *Machine) SetHaptics(enabled bool) {
	m.haptics = enabled && m.feedback.Haptics != nil
}

// PressIn starts a press. It is ignored while inert.
func (m *Machine) PressIn() {
	if m.Inert() {
		return
	}
	m.phase = Pressed
}

// PressOut ends a press without activating.
func (m *Machine) PressOut() { m.phase = Idle }

// Cancel abandons a press, for example when the pointer leaves the control.
func (m *Machine) Cancel() { m.phase = Idle }

// Release ends a press and activates if the press was live. It reports whether
// an activation was emitted.
func (m *Machine) Release() bool {
	if m.phase != Pressed {
		return false
	}
	m.phase = Idle
	return m.trigger()
}

// Activate is the keyboard and accessibility action. It behaves like a full
// press and release.
func (m *Machine) Activate() bool {
	m.phase = Idle
	return m.trigger()
}

func (m *Machine) trigger() bool {
	if m.Inert() {
		return false
	}
	if m.onActivate != nil {
		m.onActivate()
	}
	if m.haptics {
		m.pulse()
	}
	return true
}

func (m *Machine) pulse() {
	fb := m.feedback
	d := fb.Duration
	if d <= 0 {
		d = DefaultHapticDuration
	}
	fb.Dispatcher.Dispatch("haptic feedback", func(ctx context.Context) error {
		return fb.Haptics.Vibrate(ctx, d)
	})
}
