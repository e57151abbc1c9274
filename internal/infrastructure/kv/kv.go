// Package kv is the persistence port for the few admin features that survive
// a restart. Each feature keeps its whole collection as one JSON blob under a
// fixed key and rewrites it on every mutation; last write wins.
package kv

import "sync"

// Fixed storage keys. These match the browser-storage keys of the legacy
// admin panel.
const (
	KeyChatBans     = "admin_chat_bans"
	KeyChatSettings = "admin_chat_settings"
	KeyPromoCodes   = "admin_promo_codes"
)

// Store reads and writes JSON blobs by key.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// MemoryStore implements Store in memory, for tests and ephemeral runs.
type MemoryStore struct {
	values map[string][]byte
	mu     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}
