package repository

import (
	"context"
	"sync"
)

// MemoryRepository keeps payloads in process memory. Used in tests and when
// persistence is switched off.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, bucket string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.data[bucket]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (r *MemoryRepository) Put(_ context.Context, bucket string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	r.data[bucket] = stored
	return nil
}
