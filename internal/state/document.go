package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Document holds one store's state in memory. Reads and writes go through
// View and Update; Save writes the whole value back to the repository when
// something changed since the last save.
type Document[T any] struct {
	bucket string
	repo   Repository

	mu    sync.RWMutex
	value T
	dirty bool
	// version increases on every Update so a Save racing with an Update
	// doesn't clear the dirty flag for a change it did not write.
	version uint64
}

func NewDocument[T any](bucket string, repo Repository, seed T) *Document[T] {
	return &Document[T]{bucket: bucket, repo: repo, value: seed}
}

func (d *Document[T]) Name() string { return d.bucket }

// Load replaces the seed with the persisted state. If nothing was persisted
// yet the seed stays and the document is marked dirty so the next Save
// writes it.
func (d *Document[T]) Load(ctx context.Context) error {
	payload, err := d.repo.Get(ctx, d.bucket)
	if err != nil {
		return fmt.Errorf("load %s: %w", d.bucket, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if payload == nil {
		d.dirty = true
		d.version++
		return nil
	}

	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return fmt.Errorf("decode %s: %w", d.bucket, err)
	}
	d.value = v
	d.dirty = false
	return nil
}

// View runs fn under a read lock. fn must not retain references into the
// state past its return.
func (d *Document[T]) View(fn func(v *T)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(&d.value)
}

// Update runs fn under the write lock and marks the document dirty unless fn
// returns an error. fn must leave the state untouched when it fails.
func (d *Document[T]) Update(fn func(v *T) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := fn(&d.value); err != nil {
		return err
	}
	d.dirty = true
	d.version++
	return nil
}

func (d *Document[T]) Dirty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dirty
}

// Save writes the state if it changed since the last successful save.
func (d *Document[T]) Save(ctx context.Context) error {
	d.mu.RLock()
	if !d.dirty {
		d.mu.RUnlock()
		return nil
	}
	payload, err := json.Marshal(d.value)
	version := d.version
	d.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.bucket, err)
	}

	if err := d.repo.Put(ctx, d.bucket, payload); err != nil {
		return fmt.Errorf("save %s: %w", d.bucket, err)
	}

	d.mu.Lock()
	if d.version == version {
		d.dirty = false
	}
	d.mu.Unlock()
	return nil
}
