package theme

import (
	"context"
	stdErrors "errors"
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/effect"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/platform"
	"github.com/alexisbeaulieu97/themekit/internal/prefs"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// Snapshot is an immutable view of the current theme.
type Snapshot struct {
	Mode   Mode
	Name   tokens.Name
	Tokens *tokens.Set
}

// IsDark reports whether the resolved theme is dark.
func (s Snapshot) IsDark() bool { return s.Name == tokens.Dark }

// Listener receives every published snapshot.
type Listener func(Snapshot)

// Option configures a Manager.
type Option func(*Manager)

// WithPreferences sets the persistent store. Without one, nothing is read or
// written.
func WithPreferences(store prefs.Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithSchemeSource sets the platform colour-scheme source.
func WithSchemeSource(src platform.SchemeSource) Option {
	return func(m *Manager) { m.scheme = src }
}

// WithDispatcher sets how persistence writes are run.
func WithDispatcher(d effect.Dispatcher) Option {
	return func(m *Manager) { m.dispatcher = d }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// Manager is the single owner of the theme state.
type Manager struct {
	store      prefs.Store
	scheme     platform.SchemeSource
	dispatcher effect.Dispatcher
	log        *logger.Logger

	mu          sync.RWMutex
	mode        Mode
	platform    tokens.Name
	initialized bool
	subs        map[int]Listener
	nextID      int
	unwatch     func()
}

// NewManager creates a Manager in DefaultMode and starts following the scheme
// source, if any.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		mode: DefaultMode,
		subs: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = logger.Nop()
	}
	m.log = m.log.WithComponent("theme")
	if m.dispatcher == nil {
		m.dispatcher = effect.NewInline(m.log)
	}
	if m.scheme != nil {
		m.platform = m.scheme.Scheme()
		m.unwatch = m.scheme.Subscribe(m.platformChanged)
	}
	return m
}

// Initialize adopts the persisted mode. It runs at most once; later calls
// return immediately. Failures keep the current mode and are only logged.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.mu.Unlock()

	if m.store == nil {
		return
	}

	raw, err := m.store.Get(ctx, PreferenceKey)
	if err != nil {
		if stdErrors.Is(err, prefs.ErrNotFound) {
			m.log.Debug("no persisted theme preference")
			return
		}
		m.log.Warn(err, "failed to read theme preference")
		return
	}

	mode := Mode(raw)
	if !mode.Valid() {
		m.log.WithFields(map[string]any{"value": raw}).Warn(nil, "ignoring unrecognised theme preference")
		return
	}

	m.apply(mode)
}

// Snapshot returns the current theme.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Mode returns the stored mode.
func (m *Manager) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Toggle switches to the explicit opposite of the resolved theme. Subscribers
// observe the change before Toggle returns; the write is dispatched after.
func (m *Manager) Toggle() Mode {
	m.mu.RLock()
	next := Mode(Resolve(m.mode, m.platform).Opposite())
	m.mu.RUnlock()

	m.apply(next)
	m.persist(next)
	return next
}

// SetMode stores an explicit mode with the same update and persist pattern as
// Toggle. Only an invalid mode is an error.
func (m *Manager) SetMode(mode Mode) error {
	parsed, err := ParseMode(string(mode))
	if err != nil {
		return err
	}
	m.apply(parsed)
	m.persist(parsed)
	return nil
}

// Subscribe registers fn for every published snapshot.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Close stops following the scheme source and drops every subscriber.
func (m *Manager) Close() {
	m.mu.Lock()
	unwatch := m.unwatch
	m.unwatch = nil
	m.subs = make(map[int]Listener)
	m.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
}

func (m *Manager) apply(mode Mode) {
	m.mu.Lock()
	before := Resolve(m.mode, m.platform)
	changed := m.mode != mode
	m.mode = mode
	snap := m.snapshotLocked()
	handlers := m.handlersLocked()
	m.mu.Unlock()

	if !changed {
		return
	}
	m.log.WithFields(map[string]any{"mode": string(mode), "from": string(before), "to": string(snap.Name)}).Info("theme changed")
	notify(handlers, snap)
}

func (m *Manager) platformChanged(scheme tokens.Name) {
	m.mu.Lock()
	before := Resolve(m.mode, m.platform)
	m.platform = scheme
	after := Resolve(m.mode, m.platform)
	system := m.mode == ModeSystem
	snap := m.snapshotLocked()
	handlers := m.handlersLocked()
	m.mu.Unlock()

	if !system || before == after {
		return
	}
	m.log.WithFields(map[string]any{"to": string(after)}).Debug("platform scheme changed")
	notify(handlers, snap)
}

func (m *Manager) persist(mode Mode) {
	if m.store == nil {
		return
	}
	store := m.store
	m.dispatcher.Dispatch("persist theme preference", func(ctx context.Context) error {
		return store.Set(ctx, PreferenceKey, string(mode))
	})
}

func (m *Manager) snapshotLocked() Snapshot {
	name := Resolve(m.mode, m.platform)
	return Snapshot{Mode: m.mode, Name: name, Tokens: tokens.MustGet(name)}
}

func (m *Manager) handlersLocked() []Listener {
	handlers := make([]Listener, 0, len(m.subs))
	for id := 0; id <= m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			handlers = append(handlers, fn)
		}
	}
	return handlers
}

func notify(handlers []Listener, snap Snapshot) {
	for _, fn := range handlers {
		fn(snap)
	}
}
