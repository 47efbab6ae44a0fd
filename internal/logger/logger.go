// Package logger is the structured logger shared by the theme manager, the
// effect dispatcher, the demo and the CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	// NoColor disables ANSI colours in human-readable output, e.g. when the
	// log goes to a file.
	NoColor bool
	// Component tags every entry when set.
	Component string
	Writer    io.Writer
}

// Fields are extra key/value pairs attached to entries.
type Fields map[string]any

// Logger wraps zerolog. A nil *Logger is valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts. Entries go to stderr unless opts.Writer is set.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// ParseLevel maps a config level name to a zerolog level. Empty means info;
// "warning" is accepted for warn.
func ParseLevel(s string) (zerolog.Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	default:
		return zerolog.ParseLevel(name)
	}
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// WithComponent tags every entry with the emitting component name.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", name).Logger()}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l != nil && level >= l.base.GetLevel() && l.base.GetLevel() != zerolog.Disabled
}

func (l *Logger) Debug(msg string) { l.event(zerolog.DebugLevel, nil).Msg(msg) }

func (l *Logger) Info(msg string) { l.event(zerolog.InfoLevel, nil).Msg(msg) }

// Warn writes a warning. err may be nil.
func (l *Logger) Warn(err error, msg string) { l.event(zerolog.WarnLevel, err).Msg(msg) }

// Error writes an error entry. err may be nil.
func (l *Logger) Error(err error, msg string) { l.event(zerolog.ErrorLevel, err).Msg(msg) }

// event returns nil for a nil receiver; zerolog treats a nil event as disabled.
func (l *Logger) event(level zerolog.Level, err error) *zerolog.Event {
	if l == nil {
		return nil
	}
	e := l.base.WithLevel(level)
	if err != nil {
		e = e.Err(err)
	}
	return e
}
