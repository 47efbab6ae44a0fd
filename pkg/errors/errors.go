package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ConfigKind classifies a configuration error by the closed set it violated.
type ConfigKind string

const (
	KindTheme ConfigKind = "theme"
	KindToken ConfigKind = "token"
	KindMode  ConfigKind = "mode"
	KindEnum  ConfigKind = "enum"
)

// ConfigError reports a lookup outside one of the closed, compile-time known
// sets (theme names, token keys, modes). These are programmer errors.
type ConfigError struct {
	Kind    ConfigKind
	Name    string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(kind ConfigKind, name, message string) error {
	return &ConfigError{Kind: kind, Name: name, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("configuration error [%s %q]: %s", e.Kind, e.Name, e.Message)
	}
	return fmt.Sprintf("configuration error: unknown %s %q", e.Kind, e.Name)
}

// StorageError wraps a transient persistence failure.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError constructs a StorageError.
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ErrInvalidConfig matches every ParseError and ValidationError, so callers
// can tell a bad settings file from other failures with errors.Is.
var ErrInvalidConfig = stderrors.New("invalid configuration")

// ParseError reports a settings file that could not be read or decoded.
// Line is 0 when the decoder gave no position.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	return &ParseError{Path: path, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("parse error: %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidConfig }

// ValidationError names the settings key that failed validation and, when
// known, the rejected value.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// NewValidationErrorWithValue is NewValidationError for a rejected value.
func NewValidationErrorWithValue(field, message string, value any, err error) error {
	return &ValidationError{Field: field, Message: message, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("validation error: ")
	if e.Field != "" {
		b.WriteString(e.Field + ": ")
	}
	b.WriteString(e.Message)
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %q)", fmt.Sprint(e.Value))
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidConfig }
