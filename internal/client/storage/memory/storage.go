// Package memory provides a process-local SessionStorage. Nothing survives
// a restart; it backs the client when no database path is configured.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/progressboard/internal/client/storage"
)

// Storage is an in-memory SessionStorage safe for concurrent use.
type Storage struct {
	values map[storage.Key]string
	mu     sync.RWMutex
}

var _ storage.SessionStorage = (*Storage)(nil)

// New creates an empty Storage.
func New() *Storage {
	return &Storage{values: make(map[storage.Key]string)}
}

// Get implements storage.SessionStorage.
func (s *Storage) Get(_ context.Context, key storage.Key) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return v, nil
}

// Set implements storage.SessionStorage.
func (s *Storage) Set(_ context.Context, key storage.Key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete implements storage.SessionStorage.
func (s *Storage) Delete(_ context.Context, keys ...storage.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

// Close is a no-op kept for symmetry with the bbolt storage.
func (s *Storage) Close() error { return nil }
