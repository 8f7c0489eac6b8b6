package cache

import (
	"sync"
	"testing"
)

func TestNewShardedDefaultCapacity(t *testing.T) {
	c := NewSharded[string](0)
	if got := c.Stats().Capacity; got != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", got, DefaultCapacity)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[string](4)

	c.Set(1, "one")
	if v, ok := c.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %v; want \"one\", true", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) found a value that was never set")
	}

	c.Set(1, "uno")
	if v, _ := c.Get(1); v != "uno" {
		t.Errorf("Get(1) after overwrite = %q, want \"uno\"", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", st.Hits, st.Misses)
	}
}

func TestShardedEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSharded[int](2)

	// Keys that differ by a multiple of ShardCount share a shard.
	a, b, d := uint64(3), uint64(3+ShardCount), uint64(3+2*ShardCount)
	c.Set(a, 1)
	c.Set(b, 2)
	c.Get(a) // b is now the oldest
	c.Set(d, 3)

	if _, ok := c.Get(b); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get(a); !ok {
		t.Error("expected a to survive")
	}
	if _, ok := c.Get(d); !ok {
		t.Error("expected d to be present")
	}
	if ev := c.Stats().Evictions; ev != 1 {
		t.Errorf("evictions = %d, want 1", ev)
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[int](8)
	calls := 0
	create := func() int { calls++; return 42 }

	if v := c.GetOrCreate(7, create); v != 42 {
		t.Errorf("GetOrCreate = %d, want 42", v)
	}
	if v := c.GetOrCreate(7, create); v != 42 {
		t.Errorf("GetOrCreate (cached) = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestShardedDeleteAndClear(t *testing.T) {
	c := NewSharded[int](8)
	for i := uint64(0); i < 40; i++ {
		c.Set(i, int(i))
	}
	if !c.Delete(5) {
		t.Error("Delete(5) = false, want true")
	}
	if c.Delete(5) {
		t.Error("second Delete(5) = true, want false")
	}
	if c.Len() != 39 {
		t.Errorf("Len = %d, want 39", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
}

func TestStatsHitRate(t *testing.T) {
	if r := (Stats{}).HitRate(); r != 0 {
		t.Errorf("empty HitRate = %v, want 0", r)
	}
	if r := (Stats{Hits: 3, Misses: 1}).HitRate(); r != 0.75 {
		t.Errorf("HitRate = %v, want 0.75", r)
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[uint64](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := uint64(0); i < 500; i++ {
				key := i % 100
				v := c.GetOrCreate(key, func() uint64 { return key * 2 })
				if v != key*2 {
					t.Errorf("GetOrCreate(%d) = %d, want %d", key, v, key*2)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}
