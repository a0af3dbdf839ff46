package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

type key struct {
	from, to float64
	count    int
}

func TestGetOrCreate(t *testing.T) {
	c := New[key, []float64](0)
	k := key{380, 720, 64}

	calls := 0
	create := func() []float64 {
		calls++
		return []float64{1, 2, 3}
	}

	first := c.GetOrCreate(k, create)
	second := c.GetOrCreate(k, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if &first[0] != &second[0] {
		t.Error("second call should return the cached slice")
	}
	if v, ok := c.Get(k); !ok || len(v) != 3 {
		t.Errorf("Get = %v, %v", v, ok)
	}
	if _, ok := c.Get(key{0, 1, 1}); ok {
		t.Error("Get of a missing key should fail")
	}
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	c := New[int, int](0)
	var calls atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got := c.GetOrCreate(i%4, func() int {
				calls.Add(1)
				return (i % 4) * 10
			})
			if got != (i%4)*10 {
				t.Errorf("GetOrCreate(%d) = %d", i%4, got)
			}
		}(i)
	}
	wg.Wait()

	if n := calls.Load(); n != 4 {
		t.Errorf("create called %d times, want 4", n)
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](8)
	for i := 0; i < 8; i++ {
		c.GetOrCreate(i, func() int { return i })
	}
	// Touch 0 so it survives the next eviction.
	c.Get(0)
	c.GetOrCreate(100, func() int { return 100 })

	kept := 0
	for _, k := range []int{0, 1, 2, 3, 4, 5, 6, 7, 100} {
		if _, ok := c.Get(k); ok {
			kept++
		}
	}
	if kept != 6 {
		t.Errorf("%d entries kept, want 6 after eviction", kept)
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key was evicted")
	}
	if _, ok := c.Get(100); !ok {
		t.Error("newest key was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest key should have been evicted")
	}
}

func BenchmarkGetOrCreateHit(b *testing.B) {
	c := New[key, []float64](64)
	k := key{380, 720, 64}
	c.GetOrCreate(k, func() []float64 { return make([]float64, 64) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(k, nil)
	}
}
