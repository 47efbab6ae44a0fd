// Package platform adapts the host terminal to the collaborators the theme
// and interaction layers expect: a colour-scheme source and haptic feedback.
package platform

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

// SchemeSource reports the platform's preferred colour scheme. Scheme returns
// an empty Name when the preference is unknown.
type SchemeSource interface {
	Scheme() tokens.Name
	Subscribe(fn func(tokens.Name)) (unsubscribe func())
}

// StaticSource is a SchemeSource whose value is set explicitly.
type StaticSource struct {
	mu     sync.RWMutex
	scheme tokens.Name
	subs   map[int]func(tokens.Name)
	nextID int
}

// NewStaticSource creates a source reporting scheme.
func NewStaticSource(scheme tokens.Name) *StaticSource {
	return &StaticSource{scheme: scheme, subs: make(map[int]func(tokens.Name))}
}

// Scheme implements SchemeSource.
func (s *StaticSource) Scheme() tokens.Name {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheme
}

// Set changes the reported scheme and notifies subscribers when it differs.
func (s *StaticSource) Set(scheme tokens.Name) {
	s.mu.Lock()
	if s.scheme == scheme {
		s.mu.Unlock()
		return
	}
	s.scheme = scheme
	handlers := make([]func(tokens.Name), 0, len(s.subs))
	for _, fn := range s.subs {
		handlers = append(handlers, fn)
	}
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(scheme)
	}
}

// Subscribe implements SchemeSource.
func (s *StaticSource) Subscribe(fn func(tokens.Name)) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// DetectTerminal queries the terminal behind out for its background colour and
// returns a StaticSource seeded with the answer. The scheme is empty when out
// is not an interactive terminal.
func DetectTerminal(out io.Writer) *StaticSource {
	return NewStaticSource(detectScheme(out))
}

func detectScheme(out io.Writer) tokens.Name {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}
	if termenv.NewOutput(f).HasDarkBackground() {
		return tokens.Dark
	}
	return tokens.Light
}

// FromSetting maps a configured scheme override to a source. "auto" queries
// out; "none" reports an unknown scheme.
func FromSetting(setting string, out io.Writer) *StaticSource {
	switch setting {
	case "light":
		return NewStaticSource(tokens.Light)
	case "dark":
		return NewStaticSource(tokens.Dark)
	case "none":
		return NewStaticSource("")
	default:
		return DetectTerminal(out)
	}
}
