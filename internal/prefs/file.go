package prefs

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	fileVersion   = "1.0"
	corruptSuffix = ".corrupt"
)

var errCorrupt = stdErrors.New("preferences document is corrupt")

// preferencesFile is the on-disk document.
type preferencesFile struct {
	Version string            `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

// FileStore keeps preferences in a single YAML document, rewritten atomically
// on every Set.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates the parent directory for path if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("preference file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preference directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get reads key from disk.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewStorageError("get", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", apperrors.NewStorageError("get", key, err)
	}

	value, ok := file.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set writes key and rewrites the document. A corrupt document is moved
// aside to <path>.corrupt and replaced.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("set", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	switch {
	case err == nil, os.IsNotExist(err):
	case stdErrors.Is(err, errCorrupt):
		// Keep the unreadable document for inspection and start over.
		_ = os.Rename(s.path, s.path+corruptSuffix)
		file = preferencesFile{Version: fileVersion, Values: map[string]string{}}
	default:
		return apperrors.NewStorageError("set", key, err)
	}
	file.Values[key] = value

	if err := s.save(file); err != nil {
		return apperrors.NewStorageError("set", key, err)
	}
	return nil
}

func (s *FileStore) load() (preferencesFile, error) {
	file := preferencesFile{Version: fileVersion, Values: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return file, err
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("%w: %w", errCorrupt, err)
	}
	if file.Values == nil {
		file.Values = map[string]string{}
	}
	return file, nil
}

func (s *FileStore) save(file preferencesFile) error {
	file.Version = fileVersion
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
