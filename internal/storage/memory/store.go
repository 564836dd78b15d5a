// Package memory is an in-memory implementation of the blob store for tests.
package memory

import (
	"context"
	"sync"
)

// Store is an in-memory key-value store.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Close() error { return nil }

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
