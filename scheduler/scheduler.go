// Copyright 2016 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package scheduler implements a thread-safe, priority-and-deadline job
// scheduler: a fixed pool of worker goroutines dequeues jobs from a shared,
// time-ordered priority queue, respects per-job earliest-start deadlines,
// supports lazy cancellation, applies bounded-queue backpressure to
// producers, and offers graceful and immediate shutdown disciplines.
package scheduler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sid132sm/taskscheduler/internal/clock"
	"github.com/sid132sm/taskscheduler/internal/log"
)

// Mode selects a shutdown discipline.
type Mode int

const (
	// Graceful stops accepting new jobs, drains every already-submitted
	// non-cancelled job, then stops the workers.
	Graceful Mode = iota
	// Immediate stops accepting new jobs, drops every undispatched job
	// without running it, then stops the workers. Jobs already running
	// are left to complete.
	Immediate
)

func (m Mode) String() string {
	if m == Immediate {
		return "Immediate"
	}
	return "Graceful"
}

var (
	// ErrSchedulerClosed is returned by Submit once the scheduler has
	// stopped accepting new jobs, and reported (via errors.Is) as the
	// cause of a rejected submission.
	ErrSchedulerClosed = errors.New("scheduler: not accepting jobs")

	// ErrQueueFull is returned by Submit when the queue already holds
	// maxQueueSize jobs, the scheduler's backpressure signal.
	ErrQueueFull = errors.New("scheduler: queue is full")
)

// Scheduler is the priority-and-deadline job scheduler described by
// package scheduler's doc comment. The zero value is not usable; construct
// one with New.
type Scheduler struct {
	log   log.T
	clock clock.Clock

	mu   sync.Mutex
	cond *sync.Cond

	queue        jobQueue
	cancelled    cancelSet
	accepting    bool
	stopWorkers  bool
	shutdownMode Mode
	maxQueueSize int
	nextID       ID

	counters counters

	workers      sync.WaitGroup
	shutdownOnce sync.Once
}

// New constructs a Scheduler with workerCount worker goroutines and a queue
// bound of maxQueueSize. The scheduler is immediately in the Running state.
// Both arguments must be positive.
func New(l log.T, workerCount, maxQueueSize int) *Scheduler {
	return newScheduler(l, workerCount, maxQueueSize, clock.Default)
}

// newScheduler is the clock-injectable constructor used by tests.
func newScheduler(l log.T, workerCount, maxQueueSize int, clk clock.Clock) *Scheduler {
	if workerCount <= 0 {
		panic("scheduler: workerCount must be positive")
	}
	if maxQueueSize <= 0 {
		panic("scheduler: maxQueueSize must be positive")
	}

	s := &Scheduler{
		log:          l,
		clock:        clk,
		cancelled:    newCancelSet(),
		accepting:    true,
		maxQueueSize: maxQueueSize,
	}
	s.cond = sync.NewCond(&s.mu)

	for i := 0; i < workerCount; i++ {
		s.workers.Add(1)
		go s.workerLoop()
	}

	return s
}

// Submit schedules work to run no earlier than runAt, at the given
// priority. runAt may be in the past, meaning "as soon as possible". It
// returns the job's identifier, or an error (ErrSchedulerClosed or
// ErrQueueFull) if the submission was rejected.
func (s *Scheduler) Submit(work Job, runAt time.Time, priority Priority) (ID, error) {
	s.mu.Lock()

	if !s.accepting {
		s.mu.Unlock()
		return 0, ErrSchedulerClosed
	}
	if s.queue.Len() >= s.maxQueueSize {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: limit %d", ErrQueueFull, s.maxQueueSize)
	}

	s.nextID++
	id := s.nextID
	s.queue.push(&job{
		id:         id,
		runAt:      runAt,
		priority:   priority,
		work:       work,
		enqueuedAt: s.clock.Now(),
	})
	s.mu.Unlock()

	// Exactly one new job became ready to be considered; waking every
	// worker would waste cycles they'd spend re-acquiring the lock only
	// to find nothing new for them.
	s.cond.Signal()

	s.log.Debugf("scheduler: submitted job %d at priority %v, runAt=%v", id, priority, runAt)
	return id, nil
}

// Cancel marks the job with the given id as cancelled. It has no effect if
// the job has already been dispatched (or never existed), both silent
// no-ops, and it is refused outright once the scheduler has stopped
// accepting submissions: once shutdown has been requested the system is
// considered frozen, so a Cancel racing with shutdown reports refusal even
// if the target job hasn't run yet.
func (s *Scheduler) Cancel(id ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accepting {
		return false
	}
	s.cancelled.mark(id)
	return true
}

// Metrics returns a lock-consistent snapshot of queue depth, running-job
// count, and average dispatch latency.
func (s *Scheduler) Metrics() Metrics {
	s.mu.Lock()
	queued := s.queue.Len()
	s.mu.Unlock()

	running, completed, totalWaitNs := s.counters.snapshot()
	return Metrics{
		Queued:    queued,
		Running:   running,
		AvgWaitMs: avgWaitMs(totalWaitNs, completed),
	}
}

// Shutdown transitions the scheduler out of the accepting state under the
// given discipline and blocks until every worker has been joined.
// Idempotent: a second call is a no-op once the first has completed, except
// that an Immediate call following a still-draining Graceful call escalates
// by discarding whatever remains in the queue.
func (s *Scheduler) Shutdown(mode Mode) {
	s.mu.Lock()
	s.accepting = false

	switch mode {
	case Immediate:
		s.shutdownMode = Immediate
		s.drop()
		s.stopWorkers = true
	case Graceful:
		if s.shutdownMode != Immediate {
			s.shutdownMode = Graceful
		}
		if s.queue.Len() == 0 {
			s.stopWorkers = true
		}
	}
	s.cond.Broadcast()
	s.mu.Unlock()

	s.shutdownOnce.Do(s.workers.Wait)
}

// drop discards every pending job without invoking its closure. Callers
// must hold s.mu.
func (s *Scheduler) drop() {
	for s.queue.Len() > 0 {
		s.queue.pop()
	}
	s.cancelled = newCancelSet()
}
