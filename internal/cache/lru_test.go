// internal/cache/lru_test.go
//
// Unit-tests for the LRU cache.
//
// Run: go test ./internal/cache -v

package cache

import (
	"sync"
	"testing"
)

func TestLRU_GetAddBasics(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("empty cache reported a hit")
	}

	c.Add("a", 1)
	c.Add("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a was evicted despite being recently used")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRU_UpdateRefreshesEntry(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Add("a", 10) // update, also marks MRU
	c.Add("c", 3)  // evicts b

	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Fatalf("Get(a) = %d, %v; want 10, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("b survived eviction")
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := New[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := (seed*31 + i) % 100
				c.Add(key, key)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if n := c.Len(); n > 64 {
		t.Fatalf("Len = %d exceeds capacity 64", n)
	}
}

func TestNew_PanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New(0) did not panic")
		}
	}()
	New[string, int](0)
}
