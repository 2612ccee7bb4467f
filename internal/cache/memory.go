package cache

import (
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = 5 * time.Minute

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache suitable for single-instance deployments.
// Expired entries are dropped lazily on Get and swept periodically.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	done    chan struct{}
	once    sync.Once
}

func NewMemory() *Memory {
	m := &Memory{
		entries: make(map[string]memoryEntry),
		done:    make(chan struct{}),
	}
	go m.sweep(defaultSweepInterval)
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close stops the background sweeper.
func (m *Memory) Close() {
	m.once.Do(func() { close(m.done) })
}

func (m *Memory) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for key, entry := range m.entries {
				if now.After(entry.expiresAt) {
					delete(m.entries, key)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}
