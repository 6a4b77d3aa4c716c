// Package workerpool provides a persistent worker pool used to count bit
// pairs of large arrays one chunk at a time.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	partial := make([]Counts, pool.NumWorkers())
//	pool.ForEach(numChunks, func(worker, chunk int) {
//		countChunk(&partial[worker], chunk)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of goroutines that execute the work submitted to ForEach.
// Workers are spawned once at creation and reused until Close is called.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn for each index in [0, n) and blocks until all calls
// returned. Indexes are handed out to the workers one at a time, so the
// load is balanced when the cost of each index varies.
//
// fn receives the worker number, in [0, NumWorkers()), along with the index.
// Calls sharing a worker number never run concurrently, which lets callers
// keep per-worker state without synchronization.
func (p *Pool) ForEach(n int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)

	if workers == 1 || p.closed.Load() {
		for i := 0; i < n; i++ {
			fn(0, i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		worker := w
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(worker, i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
