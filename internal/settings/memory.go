package settings

import (
	"context"
	"sync"
)

// MemStore keeps settings in process memory. It backs tests and the
// "memory" backend for runs that need no persistence.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStore) Close() error { return nil }
