// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool splits row ranges across a fixed set of persistent
// goroutines. A Pool is created once and reused for every frame, so a
// band-parallel conversion costs no goroutine spawns or channel allocations.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, frame := range frames {
//	    pool.ParallelBands(frame.Height, 64, func(y0, y1 int) {
//	        convertRows(frame, y0, y1)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"

	"code.hybscloud.com/atomix"
)

// bandsPerWorker oversplits the rows so a worker that finishes early can
// take another band.
const bandsPerWorker = 2

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomix.Bool
}

// workItem represents one worker's share of a parallel operation.
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
		p.closed.StoreRelease(true)
		close(p.workC)
	})
}

// Plan returns how ParallelBands would split rows: the number of bands and
// the rows in each band but the last. Bands hold at least minRows rows
// unless rows itself is smaller.
func (p *Pool) Plan(rows, minRows int) (bands, bandRows int) {
	if rows <= 0 {
		return 0, 0
	}
	minRows = max(minRows, 1)
	bands = min(p.numWorkers*bandsPerWorker, (rows+minRows-1)/minRows)
	bands = max(bands, 1)
	bandRows = (rows + bands - 1) / bands
	// Rounding up can leave trailing bands empty.
	bands = (rows + bandRows - 1) / bandRows
	return bands, bandRows
}

// ParallelBands calls fn for disjoint row ranges [start, end) covering
// [0, rows), using the workers in the pool. Workers take bands from a shared
// counter, so uneven bands balance out. It blocks until every band is done.
//
// A closed pool, or a plan with a single band, runs fn(0, rows) on the
// calling goroutine.
func (p *Pool) ParallelBands(rows, minRows int, fn func(start, end int)) {
	bands, bandRows := p.Plan(rows, minRows)
	if bands == 0 {
		return
	}
	if bands == 1 || p.closed.LoadAcquire() {
		fn(0, rows)
		return
	}

	workers := min(p.numWorkers, bands)
	var next atomix.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					band := int(next.AddAcqRel(1)) - 1
					start := band * bandRows
					if start >= rows {
						return
					}
					fn(start, min(start+bandRows, rows))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
