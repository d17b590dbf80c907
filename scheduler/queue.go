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

import "container/heap"

// jobQueue is a heap-ordered multiset of jobs under the total order defined
// by less: earliest runAt first, then higher priority first, then lower id
// first. It satisfies container/heap.Interface. All access to a jobQueue
// happens under the owning Scheduler's mutex; the type itself does no
// locking of its own.
type jobQueue []*job

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	return less(q[i], q[j])
}

// less implements the dispatch order: earliest runAt first; higher
// priority breaks a runAt tie; lower id breaks a priority tie.
func less(a, b *job) bool {
	if !a.runAt.Equal(b.runAt) {
		return a.runAt.Before(b.runAt)
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.id < b.id
}

func (q jobQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *jobQueue) Push(x interface{}) {
	*q = append(*q, x.(*job))
}

func (q *jobQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// peek returns the head of the queue (the most eligible job) without
// removing it. Callers must hold the Scheduler's mutex and check Len()>0
// first.
func (q jobQueue) peek() *job {
	return q[0]
}

// push inserts a job, restoring the heap invariant.
func (q *jobQueue) push(j *job) {
	heap.Push(q, j)
}

// pop removes and returns the head of the queue. Callers must hold the
// Scheduler's mutex and check Len()>0 first.
func (q *jobQueue) pop() *job {
	return heap.Pop(q).(*job)
}
