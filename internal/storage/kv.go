package storage

import "sync"

// KV is a persistent string key-value store.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Memory is a KV kept in process memory.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (memory *Memory) Get(key string) (string, bool) {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	value, ok := memory.values[key]
	return value, ok
}

// Set stores value under key.
func (memory *Memory) Set(key, value string) error {
	memory.mu.Lock()
	defer memory.mu.Unlock()
	memory.values[key] = value
	return nil
}
