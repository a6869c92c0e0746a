package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	id        int64
	expiresAt time.Time
}

// Memory is in-process cache, used when Redis is not configured.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory returns new empty Memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns id stored under key. Expired entries are removed on read.
func (m *Memory) Get(_ context.Context, key string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return 0, false, nil
	}

	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return 0, false, nil
	}

	return entry.id, true, nil
}

// Set stores id under key for ttl.
func (m *Memory) Set(_ context.Context, key string, id int64, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		id:        id,
		expiresAt: m.now().Add(ttl),
	}

	return nil
}
