package lock

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestDoSerializesPerKey(t *testing.T) {
	k := NewKeyed()

	const n = 32
	var inside, maxInside int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := k.Do(context.Background(), "therapist-a", func() error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Errorf("critical section concurrency = %d, want 1", maxInside)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	k := NewKeyed()

	if err := k.Acquire(context.Background(), "a"); err != nil {
		t.Fatalf("Acquire(a): %v", err)
	}
	defer k.Release("a")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := k.Do(context.Background(), "b", func() error { return nil }); err != nil {
			t.Errorf("Do(b): %v", err)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on key a blocked key b")
	}
}

func TestAcquireHonorsContext(t *testing.T) {
	k := NewKeyed()

	if err := k.Acquire(context.Background(), "a"); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := k.Acquire(ctx, "a"); err != context.DeadlineExceeded {
		t.Errorf("Acquire under held lock = %v, want DeadlineExceeded", err)
	}

	// The holder can still release and the key is reusable afterwards.
	k.Release("a")
	if err := k.Do(context.Background(), "a", func() error { return nil }); err != nil {
		t.Errorf("Do after release: %v", err)
	}
}

func TestEntriesAreReleased(t *testing.T) {
	k := NewKeyed()
	for i := 0; i < 100; i++ {
		if err := k.Do(context.Background(), "x", func() error { return nil }); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) != 0 {
		t.Errorf("entries = %d, want 0 after all locks released", len(k.entries))
	}
}
