package kvstore

import (
	"context"
	"sync"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/ports"
)

// Memory is an in-memory scoped key-value store for tests and ephemeral
// sessions.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

var _ ports.KVStore = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

// Get returns the value for (scope, key), or apperrors.ErrNotFound.
func (m *Memory) Get(_ context.Context, scope, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.data[scope][key]; ok {
		return value, nil
	}
	return "", apperrors.ErrNotFound
}

// Set stores the value for (scope, key).
func (m *Memory) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[scope] == nil {
		m.data[scope] = make(map[string]string)
	}
	m.data[scope][key] = value
	return nil
}

// Remove deletes (scope, key). Removing a missing key is not an error.
func (m *Memory) Remove(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[scope], key)
	return nil
}
