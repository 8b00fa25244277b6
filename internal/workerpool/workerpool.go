// Copyright 2025 The go-isqrt Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for sweeping large
// integer domains in parallel. A Pool is created once and reused across
// sweeps, so checking all 2^32 inputs of a 32-bit kernel costs one goroutine
// per worker rather than one per chunk.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelRange(0, 1<<32, 1<<20, func(lo, hi uint64) bool {
//	    return checkChunk(lo, hi)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultChunk is the chunk size used when ParallelRange is given 0.
const DefaultChunk = 1 << 16

// Pool is a persistent worker pool that can be reused across many sweeps.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one worker's share of a sweep.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
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

// ParallelRange calls fn on consecutive chunks [lo, hi) covering
// [start, end), handing chunks to workers by atomic work stealing.
// hi-lo is at most chunk. Blocks until all work completes.
//
// fn returns false to stop the sweep: chunks not yet claimed are skipped,
// chunks already running finish. ParallelRange reports whether every chunk
// returned true.
//
// end is exclusive, so sweeping the full uint32 domain is
// ParallelRange(0, 1<<32, ...). A sweep ending at 2^64 cannot be expressed;
// callers check math.MaxUint64 separately.
func (p *Pool) ParallelRange(start, end, chunk uint64, fn func(lo, hi uint64) bool) bool {
	if end <= start {
		return true
	}
	if chunk == 0 {
		chunk = DefaultChunk
	}

	n := end - start
	numChunks := n / chunk
	if n%chunk != 0 {
		numChunks++
	}

	var stopped atomic.Bool
	run := func(i uint64) {
		lo := start + i*chunk
		hi := end
		if end-lo > chunk {
			hi = lo + chunk
		}
		if !fn(lo, hi) {
			stopped.Store(true)
		}
	}

	workers := uint64(p.numWorkers)
	if numChunks < workers {
		workers = numChunks
	}

	if p.closed.Load() || workers == 1 {
		for i := uint64(0); i < numChunks && !stopped.Load(); i++ {
			run(i)
		}
		return !stopped.Load()
	}

	var nextChunk atomic.Uint64
	var wg sync.WaitGroup
	wg.Add(int(workers))

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !stopped.Load() {
					i := nextChunk.Add(1) - 1
					if i >= numChunks {
						return
					}
					run(i)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return !stopped.Load()
}
