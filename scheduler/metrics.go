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

import "sync/atomic"

// Metrics is a lock-consistent snapshot of scheduler activity.
type Metrics struct {
	// Queued is the number of jobs currently held by the priority queue,
	// read under the scheduler mutex so it is coherent with submissions.
	Queued int

	// Running is the number of jobs currently executing across all workers.
	Running int64

	// AvgWaitMs is the average dispatch latency in milliseconds across all
	// completed jobs. Zero if no job has completed yet.
	AvgWaitMs float64
}

// counters holds the atomics backing Metrics, separate from the fields the
// mutex guards so that reads don't require acquiring the scheduler lock.
type counters struct {
	runningJobs   int64
	completedJobs int64
	totalWaitNs   int64
}

func (c *counters) startJob() {
	atomic.AddInt64(&c.runningJobs, 1)
}

func (c *counters) finishJob(waitNs int64) {
	atomic.AddInt64(&c.totalWaitNs, waitNs)
	atomic.AddInt64(&c.completedJobs, 1)
	atomic.AddInt64(&c.runningJobs, -1)
}

func (c *counters) snapshot() (running, completed int64, totalWaitNs int64) {
	return atomic.LoadInt64(&c.runningJobs), atomic.LoadInt64(&c.completedJobs), atomic.LoadInt64(&c.totalWaitNs)
}

func avgWaitMs(totalWaitNs, completed int64) float64 {
	if completed == 0 {
		return 0
	}
	return float64(totalWaitNs) / float64(completed) / 1e6
}
