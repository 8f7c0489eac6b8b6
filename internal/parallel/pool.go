// Package parallel provides the worker pool used for batch stylization.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines draining a shared work queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup

	// mu guards closing queue against concurrent sends.
	mu      sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A queue a few times deeper than the worker count hides submit latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), queueSize),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for work := range p.queue {
		work()
	}
}

// ExecuteAll runs every work item and waits for the submitted ones to
// finish. If ctx is cancelled, items not yet submitted are skipped and
// ctx.Err() is returned; skipped[i] reports which ones. A closed pool runs
// nothing and reports every item as skipped with a nil error.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) (skipped []bool, err error) {
	skipped = make([]bool, len(work))

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		for i := range skipped {
			skipped[i] = true
		}
		return skipped, nil
	}

	var done sync.WaitGroup
	for i, fn := range work {
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			skipped[i] = true
			continue
		}

		done.Add(1)
		wrapped := func() {
			defer done.Done()
			fn()
		}
		select {
		case p.queue <- wrapped:
		case <-ctx.Done():
			done.Done()
			err = ctx.Err()
			skipped[i] = true
		}
	}

	done.Wait()
	return skipped, err
}

// Close stops accepting work, lets queued work finish and stops the
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.mu.Lock()
	close(p.queue)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
