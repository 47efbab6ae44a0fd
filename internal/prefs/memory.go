package prefs

import (
	"context"
	"sync"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// MemoryStore is an in-process Store. Failures can be injected to exercise
// the recovery paths of callers.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes []Write
	getErr error
	setErr error
}

// Write records one successful Set call.
type Write struct {
	Key   string
	Value string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Seed stores a value without recording a write.
func (m *MemoryStore) Seed(key, value string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return m
}

// FailGet makes every Get return err. Pass nil to clear.
func (m *MemoryStore) FailGet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailSet makes every Set return err. Pass nil to clear.
func (m *MemoryStore) FailSet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// Writes returns the successful writes in call order.
func (m *MemoryStore) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return "", apperrors.NewStorageError("get", key, m.getErr)
	}
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewStorageError("get", key, err)
	}
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setErr != nil {
		return apperrors.NewStorageError("set", key, m.setErr)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("set", key, err)
	}
	m.values[key] = value
	m.writes = append(m.writes, Write{Key: key, Value: value})
	return nil
}
