// Package prefs persists small string preferences under string keys.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound reports that a key has never been written.
var ErrNotFound = errors.New("preference not found")

// Store is an asynchronous-friendly key/value store. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Open builds the store for backend rooted at path. path is a file for the
// file backend and a database for the sqlite backend; memory ignores it.
func Open(backend Backend, path string) (Store, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}

// DefaultPath returns the conventional location for backend under dir.
func DefaultPath(backend Backend, dir string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(dir, "preferences.db")
	default:
		return filepath.Join(dir, "preferences.yaml")
	}
}
