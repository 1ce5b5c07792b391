// Package lock provides a keyed mutex used to serialize booking transactions
// per therapist. Only the guarded section of a booking (overlap recheck plus
// insert) runs under the key's lock; availability reads never take it.
package lock

import (
	"context"
	"sync"
)

// Keyed hands out one mutex per key. Entries are reference-counted and
// released once no goroutine holds or waits on them, so the map does not grow
// with the number of therapists ever seen.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ch   chan struct{}
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{entries: make(map[string]*entry)}
}

// Acquire blocks until the key's lock is held or ctx is done. On success the
// caller must call Release exactly once.
func (k *Keyed) Acquire(ctx context.Context, key string) error {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.drop(key, e)
		return ctx.Err()
	}
}

// Release frees the key's lock.
func (k *Keyed) Release(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	k.mu.Unlock()
	if !ok {
		return
	}
	<-e.ch
	k.drop(key, e)
}

func (k *Keyed) drop(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()
}

// Do runs fn while holding the key's lock.
func (k *Keyed) Do(ctx context.Context, key string, fn func() error) error {
	if err := k.Acquire(ctx, key); err != nil {
		return err
	}
	defer k.Release(key)
	return fn()
}
