// Copyright 2020 Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

package ingest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	_ "go.nanomsg.org/mangos/v3/transport/inproc"

	"github.com/sid132sm/taskscheduler/internal/log"
	"github.com/sid132sm/taskscheduler/scheduler"
)

// fakeScheduler stands in for *scheduler.Scheduler so Receiver can be
// tested without spinning up a real worker pool: it runs each submitted
// closure inline, which is enough to observe what the receiver decided to
// submit and with what priority.
type fakeScheduler struct {
	mu         sync.Mutex
	priorities []scheduler.Priority
	shutdowns  []scheduler.Mode
}

func (f *fakeScheduler) Submit(work scheduler.Job, _ time.Time, priority scheduler.Priority) (scheduler.ID, error) {
	f.mu.Lock()
	f.priorities = append(f.priorities, priority)
	f.mu.Unlock()
	work()
	return 1, nil
}

func (f *fakeScheduler) Shutdown(mode scheduler.Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdowns = append(f.shutdowns, mode)
}

func TestPublisherReceiver_RoundTrip(t *testing.T) {
	addr := "inproc://ingest-test-roundtrip"
	l := log.NewMock()

	pub, err := NewPublisher(l, addr)
	assert.NoError(t, err)
	defer pub.Close()

	fake := &fakeScheduler{}
	recv, err := NewReceiver(l, addr, fake)
	assert.NoError(t, err)
	defer recv.Close()

	var processed []VehicleRecord
	var mu sync.Mutex
	done := make(chan error, 1)
	go func() {
		done <- recv.Run(func(rec VehicleRecord) {
			mu.Lock()
			processed = append(processed, rec)
			mu.Unlock()
		})
	}()

	assert.NoError(t, pub.Publish(VehicleRecord{VehicleID: "car-1", SpeedMph: 42}))
	assert.NoError(t, pub.Publish(VehicleRecord{VehicleID: "car-2", ErrorCode: "E9"}))
	assert.NoError(t, pub.End())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("receiver did not observe the sentinel in time")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, processed, 2)
	assert.Equal(t, "car-1", processed[0].VehicleID)
	assert.Equal(t, "car-2", processed[1].VehicleID)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, []scheduler.Priority{scheduler.Normal, scheduler.High}, fake.priorities)
	assert.Equal(t, []scheduler.Mode{scheduler.Graceful}, fake.shutdowns)
}

func TestVehicleRecord_SentinelDetection(t *testing.T) {
	assert.True(t, Sentinel().IsSentinel())
	assert.False(t, VehicleRecord{VehicleID: "car-1"}.IsSentinel())
}
