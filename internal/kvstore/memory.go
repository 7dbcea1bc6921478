package kvstore

import (
	"context"
	"sync"
)

type memoryEntry struct {
	value   string
	version uint64
}

// Memory is a process-local Store
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// Get returns the value stored at key
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	value, _, found, err := m.GetVersioned(ctx, key)
	return value, found, err
}

// GetVersioned returns the value stored at key and its version
func (m *Memory) GetVersioned(_ context.Context, key string) (string, uint64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	return e.value, e.version, ok, nil
}

// Set stores value at key, last writer wins
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entries[key]
	m.entries[key] = memoryEntry{value: value, version: e.version + 1}
	return nil
}

// SetIfVersion stores value at key only if the key is still at version
func (m *Memory) SetIfVersion(_ context.Context, key, value string, version uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entries[key]
	if e.version != version {
		return e.version, ErrVersion
	}
	m.entries[key] = memoryEntry{value: value, version: version + 1}
	return version + 1, nil
}

// Delete removes key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Ping always succeeds
func (m *Memory) Ping(context.Context) error {
	return nil
}

// Close is a no-op
func (m *Memory) Close() error {
	return nil
}
