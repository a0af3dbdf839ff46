// Package parallel runs independent work items, such as Monte-Carlo
// chunks or albedo table cells, on a fixed set of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with per-worker queues.
//
// Work is dispatched round-robin. A worker whose queue is empty steals
// from the others, which balances cells of very different cost.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool creates a started pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			run(work)
			continue
		default:
		}

		if stolen := p.steal(id); stolen != nil {
			stolen()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			run(work)
		}
	}
}

func run(work func()) {
	if work != nil {
		work()
	}
}

func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			run(work)
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case work := <-p.queues[(id+i)%p.workers]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll runs every work item and waits for all of them.
// If the pool is closed, the remaining items run on the caller's goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	_ = p.ExecuteAllContext(context.Background(), work)
}

// ExecuteAllContext runs the work items and waits for the dispatched ones.
// After ctx is cancelled no further items are dispatched and ctx.Err()
// is returned; items already running finish first.
func (p *WorkerPool) ExecuteAllContext(ctx context.Context, work []func()) error {
	if len(work) == 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	for i, fn := range work {
		if ctx.Err() != nil {
			break
		}
		if fn == nil {
			continue
		}

		pending.Add(1)
		wrapped := func() {
			defer pending.Done()
			fn()
		}

		if !p.running.Load() {
			wrapped()
			continue
		}
		select {
		case <-p.done:
			wrapped()
			continue
		default:
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		case <-ctx.Done():
			pending.Done()
		}
	}

	pending.Wait()
	return ctx.Err()
}

// Close stops accepting work, runs everything already queued and stops
// the workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
