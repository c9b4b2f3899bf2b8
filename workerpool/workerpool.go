// Copyright 2026 The HFT-Sim Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package workerpool runs a fixed number of worker goroutines draining a
// shared bounded task queue. Capacity never grows implicitly: Submit on a
// full queue reports failure to the caller rather than blocking or
// allocating a new slot.
package workerpool

import (
	"errors"
	"log"
	"sync"

	"code.hybscloud.com/spin"

	"github.com/hftsim-go/core/ring"
)

// ErrFull is returned by Submit when the task queue is at capacity.
var ErrFull = ring.ErrWouldBlock

// ErrStopped is returned by Submit after Stop has been called.
var ErrStopped = errors.New("workerpool: stopped")

// Task is a unit of work submitted to the pool.
type Task func()

// Pool runs a fixed set of workers pulling Tasks off a shared MPSC queue.
type Pool struct {
	queue   *ring.MPSC[Task]
	workers int
	logger  *log.Logger

	wg      sync.WaitGroup
	stopped chan struct{}
	once    sync.Once
}

// New creates a pool with the given worker count and task queue capacity.
// logger receives one line per recovered task panic; if nil, log.Default()
// is used.
func New(workers, queueCapacity int, logger *log.Logger) *Pool {
	if logger == nil {
		logger = log.Default()
	}
	return &Pool{
		queue:   ring.NewMPSC[Task](queueCapacity),
		workers: workers,
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// Start launches the worker goroutines. Not safe to call more than once.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.runWorker()
	}
}

func (p *Pool) runWorker() {
	defer p.wg.Done()
	sw := spin.Wait{}
	for {
		select {
		case <-p.stopped:
			return
		default:
		}

		task, err := p.queue.Pop()
		if err != nil {
			sw.Once()
			continue
		}
		p.runTask(task)
	}
}

func (p *Pool) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("workerpool: recovered task panic: %v", r)
		}
	}()
	task()
}

// Submit enqueues a task for execution by one of the pool's workers.
// Returns ErrFull if the queue is at capacity, ErrStopped if the pool has
// been stopped.
func (p *Pool) Submit(task Task) error {
	select {
	case <-p.stopped:
		return ErrStopped
	default:
	}
	return p.queue.Push(&task)
}

// Stop signals workers to exit and waits for them to finish. Workers
// observe the stop signal between tasks: whatever task is currently
// running completes, but tasks still queued are abandoned rather than
// drained. Stop is idempotent.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.stopped)
	})
	p.wg.Wait()
}
