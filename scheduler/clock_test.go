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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sid132sm/taskscheduler/internal/clock"
)

// TestScheduler_UsesInjectedClock pins a frozen clock so that a job's
// enqueuedAt and its dispatch-time read come back equal, making average
// dispatch latency deterministically zero, a scenario that would be
// flaky to assert against the real wall clock.
func TestScheduler_UsesInjectedClock(t *testing.T) {
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mocked := clock.NewMocked()
	mocked.On("Now").Return(frozen)

	s := newScheduler(logger, 1, 10, mocked)

	ran := make(chan struct{}, 1)
	_, err := s.Submit(func() { ran <- struct{}{} }, frozen, Normal)
	assert.NoError(t, err)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	s.Shutdown(Graceful)

	m := s.Metrics()
	assert.Equal(t, float64(0), m.AvgWaitMs)
}

// TestWorker_WakesOnStrictlyEarlierInsert: a worker parked in a timed wait
// on a distant runAt must wake and recompute its wait when a strictly
// earlier job is submitted, rather than sleeping out the original
// duration. The mock clock's Now is pinned
// for the whole test, so the only way either job could ever look ready is
// if the worker's pop logic were buggy; what this test actually pins down
// is which duration the worker asks the clock to wait on next, proving the
// wake came from the condition variable broadcast on submission and not
// from the first timer firing: the AfterChannel returned by After is
// never written to at all.
func TestWorker_WakesOnStrictlyEarlierInsert(t *testing.T) {
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mocked := clock.NewMocked()
	mocked.On("Now").Return(frozen)
	mocked.On("After", mock.Anything).Return(mocked.AfterChannel)

	s := newScheduler(logger, 1, 10, mocked)

	_, err := s.Submit(func() {}, frozen.Add(1000*time.Millisecond), Normal)
	assert.NoError(t, err)

	// Let the sole worker park in a timed wait on the distant job.
	time.Sleep(50 * time.Millisecond)
	mocked.AssertCalled(t, "After", 1000*time.Millisecond)

	_, err = s.Submit(func() {}, frozen.Add(50*time.Millisecond), Normal)
	assert.NoError(t, err)

	// Submit's Signal wakes the parked worker; it must see the new,
	// earlier head and request a wait scaled to it, not keep waiting on
	// the stale one-second duration.
	time.Sleep(50 * time.Millisecond)
	mocked.AssertCalled(t, "After", 50*time.Millisecond)

	s.Shutdown(Immediate)
}
