package kvstore

import "sync"

// KV is a named-slot text store. Absence is not an error: Get reports it via
// the second return, and writes never surface failures to callers.
type KV interface {
	Get(key string) (string, bool)
	Put(key, value string)
	Delete(key string)
}

type memoryKV struct {
	mu    sync.RWMutex
	slots map[string]string
}

// Memory returns an ephemeral KV, used by tests and by runs without a
// store file.
func Memory() KV {
	return &memoryKV{slots: make(map[string]string)}
}

func (m *memoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok
}

func (m *memoryKV) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
}

func (m *memoryKV) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
}
