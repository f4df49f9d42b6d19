// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pool provides the bounded concurrency domain shared by nested
// directory searches.
//
// A Pool limits how many blocking calls run at once (Do) and tracks the
// goroutines started through it (Go) so the owner can join them (Close).
// Slots are held only while a blocking call runs, never while a task waits
// for other tasks, so tasks that fan out further tasks on the same pool
// cannot starve each other of slots.
//
// Whoever creates a Pool closes it. Code handed a Pool by its caller never
// closes it.
package pool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool bounds concurrent blocking work. The zero value is not usable; call New.
type Pool struct {
	sem  *semaphore.Weighted
	size int
	wg   sync.WaitGroup
}

// New returns a pool allowing size concurrent calls to Do. A size below one
// selects a default based on the CPU count.
func New(size int) *Pool {
	if size < 1 {
		size = runtime.NumCPU() * 5
	}
	return &Pool{sem: semaphore.NewWeighted(int64(size)), size: size}
}

// Size returns the number of concurrent slots.
func (p *Pool) Size() int { return p.size }

// Do runs fn once a slot is free and returns its error. It returns ctx.Err()
// without running fn if the context ends while waiting for a slot.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn()
}

// Go starts fn on a new goroutine tracked by the pool. fn should use Do for
// its blocking calls.
func (p *Pool) Go(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn()
	}()
}

// Close waits for every goroutine started with Go to return.
func (p *Pool) Close() {
	p.wg.Wait()
}
