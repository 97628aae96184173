package storage

import "sync"

// MemoryBackend keeps entries in-process. It can emulate a quota-limited or
// disabled browser storage for tests and local runs.
type MemoryBackend struct {
	mu       sync.RWMutex
	entries  map[string]string
	quota    int // bytes; 0 means unlimited
	used     int
	disabled bool
}

// NewMemoryBackend initializes an empty backend. quotaBytes <= 0 disables
// the quota.
func NewMemoryBackend(quotaBytes int) *MemoryBackend {
	if quotaBytes < 0 {
		quotaBytes = 0
	}
	return &MemoryBackend{
		entries: make(map[string]string),
		quota:   quotaBytes,
	}
}

// Get returns the value stored under key.
func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disabled {
		return "", false, ErrUnavailable
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

// Set stores value under key unless that would exceed the quota.
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrUnavailable
	}
	used := m.used + len(key) + len(value)
	if old, ok := m.entries[key]; ok {
		used -= len(key) + len(old)
	}
	if m.quota > 0 && used > m.quota {
		return ErrQuotaExceeded
	}
	m.entries[key] = value
	m.used = used
	return nil
}

// Remove deletes key.
func (m *MemoryBackend) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disabled {
		return ErrUnavailable
	}
	if old, ok := m.entries[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.entries, key)
	}
	return nil
}

// SetDisabled toggles whether every call fails with ErrUnavailable.
func (m *MemoryBackend) SetDisabled(disabled bool) {
	m.mu.Lock()
	m.disabled = disabled
	m.mu.Unlock()
}

// Available reports whether the backend accepts calls.
func (m *MemoryBackend) Available() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.disabled
}

// Snapshot returns a copy of all entries.
func (m *MemoryBackend) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		res[k] = v
	}
	return res
}

// Used returns the bytes currently accounted against the quota.
func (m *MemoryBackend) Used() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}
