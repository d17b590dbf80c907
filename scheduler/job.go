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

// Priority is the closed set of priority levels a Job may be submitted with.
type Priority int

const (
	// Low is the lowest priority level.
	Low Priority = iota
	// Normal is the default priority level.
	Normal
	// High is the highest priority level.
	High
)

// String renders the priority for logging.
func (p Priority) String() string {
	switch p {
	case Low:
		return "Low"
	case Normal:
		return "Normal"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// ID is the opaque identifier returned by Submit. Identifiers are issued by
// a counter starting at 1 and are never reused within a Scheduler's lifetime.
type ID uint64

// Job is the nullary work closure submitted to the scheduler. A Job must
// not block indefinitely: cancellation is cooperative only before dispatch,
// never preemptive once the closure has started running.
type Job func()

// job is the internal bookkeeping record the priority queue and worker
// loop operate on. It is owned exclusively by the queue from acceptance
// until a worker pops it, and by that worker's stack frame thereafter.
type job struct {
	id         ID
	runAt      time.Time
	priority   Priority
	work       Job
	enqueuedAt time.Time
}
