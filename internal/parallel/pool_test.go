package parallel

import (
	"context"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d", n, pool.Workers(), want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){nil})
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	// A closed pool still completes the batch on the caller's goroutine.
	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllContext_Cancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var counter atomic.Int64
	work := make([]func(), 50)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if err := pool.ExecuteAllContext(ctx, work); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if counter.Load() != 0 {
		t.Errorf("counter = %d, want 0 for a cancelled context", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllContext_CancelMidway(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() {
			if counter.Add(1) == 10 {
				cancel()
			}
			time.Sleep(100 * time.Microsecond)
		}
	}

	if err := pool.ExecuteAllContext(ctx, work); err == nil {
		t.Error("expected an error after cancellation")
	}
	if n := counter.Load(); n >= 1000 {
		t.Errorf("all %d items ran despite cancellation", n)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Close()
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if counter.Load() != 2 {
		t.Errorf("counter = %d after closing twice, want 2", counter.Load())
	}
}

// =============================================================================
// Concurrency Tests
// =============================================================================

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 50)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if counter.Load() != 500 {
		t.Errorf("counter = %d, want 500", counter.Load())
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Every fourth item is slow and lands on worker 0.
	var count atomic.Int64
	work := make([]func(), 40)
	for i := range work {
		slow := i%4 == 0
		work[i] = func() {
			if slow {
				time.Sleep(2 * time.Millisecond)
			}
			count.Add(1)
		}
	}

	start := time.Now()
	pool.ExecuteAll(work)
	if count.Load() != 40 {
		t.Errorf("count = %d, want 40", count.Load())
	}
	t.Logf("uneven batch took %v", time.Since(start))
}

// =============================================================================
// Map and Chunks Tests
// =============================================================================

func TestMap(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	got, err := Map(context.Background(), pool, 10, func(i int) int { return i * i })
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}
	if !slices.Equal(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		total, parts int
		want         []int
	}{
		{10, 3, []int{4, 3, 3}},
		{2, 5, []int{1, 1}},
		{7, 1, []int{7}},
		{5, 0, []int{5}},
		{0, 4, nil},
	}
	for _, tt := range tests {
		if got := Chunks(tt.total, tt.parts); !slices.Equal(got, tt.want) {
			t.Errorf("Chunks(%d, %d) = %v, want %v", tt.total, tt.parts, got, tt.want)
		}
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	work := make([]func(), 256)
	var sink atomic.Int64
	for i := range work {
		work[i] = func() { sink.Add(1) }
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ExecuteAll(work)
	}
}
