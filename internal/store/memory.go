package store

import (
	"slices"
	"sync"

	"hangar-go/internal/hangar"
)

// MemoryStore is an in-memory implementation of the Store interface, useful
// for testing. Safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Get returns a copy of the blob stored under key, or (nil, nil) if the key
// has never been written.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

// Set replaces the blob under key with a copy of data.
func (m *MemoryStore) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[key] = slices.Clone(data)
	return nil
}

// ValidateSetup always succeeds for the in-memory store.
func (m *MemoryStore) ValidateSetup() error { return nil }

// Compile-time check that MemoryStore implements hangar.Store
var _ hangar.Store = (*MemoryStore)(nil)
