// Copyright 2025 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for sorting
// many independent slices. A Pool is created once and reused across calls,
// so each batch pays neither goroutine spawn nor channel allocation cost.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(lines), func(i int) {
//	    quicksort.Slice(lines[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// live until Close.
type Pool struct {
	numWorkers int
	workC      chan task

	// mu is held for reading while submitting, so Close never closes workC
	// under a sender.
	mu     sync.RWMutex
	closed bool
}

// task is one unit of work plus the barrier of the call that submitted it.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// counter hands out indices to workers. The padding keeps the hot atomic off
// cache lines shared with the caller's other locals.
type counter struct {
	_    cpu.CacheLinePad
	next atomic.Int64
	_    cpu.CacheLinePad
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending work completes. Calling Close more
// than once is safe. After Close, the ParallelFor methods run on the caller.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// submit queues count calls of fn, one per worker index, and waits for all of
// them. It reports false without running anything if the pool is closed.
func (p *Pool) submit(count int, fn func(worker int)) bool {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false
	}

	var wg sync.WaitGroup
	wg.Add(count)
	for w := range count {
		p.workC <- task{fn: func() { fn(w) }, barrier: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
	return true
}

// ParallelFor calls fn over [0, n) split into one contiguous [start, end)
// chunk per worker and blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	ok := p.submit(workers, func(w int) {
		start := w * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
	if !ok {
		fn(0, n)
	}
}

// ParallelForAtomic calls fn for every index in [0, n). Workers claim the next
// index from a shared counter, which balances load when items differ in cost,
// as slices of different lengths do. Blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var c counter
	ok := p.submit(workers, func(int) {
		for {
			i := int(c.next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
	if !ok {
		for i := range n {
			fn(i)
		}
	}
}
