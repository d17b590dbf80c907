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

package scheduler

import "time"

// workerLoop is run by every worker goroutine until the scheduler tells it
// to stop. All queue/flag access below happens under s.mu; only the
// closure invocation itself runs unlocked.
func (s *Scheduler) workerLoop() {
	defer s.workers.Done()

	s.mu.Lock()
	for {
		if s.stopWorkers {
			s.mu.Unlock()
			return
		}

		if s.queue.Len() == 0 {
			if !s.accepting && s.shutdownMode == Graceful {
				// Drain complete: nothing left to wait for.
				s.stopWorkers = true
				s.cond.Broadcast()
				s.mu.Unlock()
				return
			}
			s.cond.Wait()
			continue
		}

		head := s.queue.peek()
		now := s.clock.Now()
		if head.runAt.After(now) {
			s.timedWait(head.runAt.Sub(now))
			continue
		}

		j := s.queue.pop()
		if s.cancelled.take(j.id) {
			continue
		}

		s.counters.startJob()
		s.mu.Unlock()

		s.run(j)

		s.mu.Lock()
	}
}

// timedWait blocks the calling worker, which must hold s.mu, until either
// the duration d elapses or the condition variable is signalled for any
// other reason (a new, earlier job was inserted; stopWorkers became true;
// the queue became empty). It always returns with s.mu held. Because every
// mutation to queue/flags broadcasts or signals the condition variable, the
// caller's re-check of the loop condition after timedWait returns is what
// makes a strictly-earlier insertion wake the right worker: some waiter is
// woken, re-evaluates the (shared) queue head under the lock, and acts on
// whatever it now sees.
func (s *Scheduler) timedWait(d time.Duration) {
	done := make(chan struct{})
	go func() {
		select {
		case <-s.clock.After(d):
			s.mu.Lock()
			s.cond.Broadcast()
			s.mu.Unlock()
		case <-done:
		}
	}()

	s.cond.Wait()
	close(done)
}

// run invokes the job's closure, recovering any panic so one broken job
// can never take down the worker pool, then updates the completion
// counters. Must be called without s.mu held.
func (s *Scheduler) run(j *job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("scheduler: job %d panicked: %v", j.id, r)
		}
		waitNs := s.clock.Now().Sub(j.enqueuedAt).Nanoseconds()
		s.counters.finishJob(waitNs)
	}()
	j.work()
}
