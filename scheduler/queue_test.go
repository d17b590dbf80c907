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
)

// TestQueueOrder_RunAtDominates checks that an earlier runAt always wins,
// even when the earlier job has the lower priority.
func TestQueueOrder_RunAtDominates(t *testing.T) {
	t0 := time.Now()
	var q jobQueue
	q.push(&job{id: 1, runAt: t0.Add(100 * time.Millisecond), priority: High})
	q.push(&job{id: 2, runAt: t0, priority: Low})

	first := q.pop()
	assert.Equal(t, ID(2), first.id)
}

// TestQueueOrder_PriorityTieBreak: three jobs share a runAt; High pops
// before Normal pops before Low, regardless of insertion order.
func TestQueueOrder_PriorityTieBreak(t *testing.T) {
	t0 := time.Now().Add(50 * time.Millisecond)
	var q jobQueue
	q.push(&job{id: 1, runAt: t0, priority: Low})
	q.push(&job{id: 2, runAt: t0, priority: High})
	q.push(&job{id: 3, runAt: t0, priority: Normal})

	var order []ID
	for q.Len() > 0 {
		order = append(order, q.pop().id)
	}
	assert.Equal(t, []ID{2, 3, 1}, order)
}

// TestQueueOrder_IDTieBreak checks FIFO among equal runAt and priority.
func TestQueueOrder_IDTieBreak(t *testing.T) {
	t0 := time.Now()
	var q jobQueue
	q.push(&job{id: 3, runAt: t0, priority: Normal})
	q.push(&job{id: 1, runAt: t0, priority: Normal})
	q.push(&job{id: 2, runAt: t0, priority: Normal})

	assert.Equal(t, ID(1), q.pop().id)
	assert.Equal(t, ID(2), q.pop().id)
	assert.Equal(t, ID(3), q.pop().id)
}

func TestCancelSet_TakeIsOneShot(t *testing.T) {
	s := newCancelSet()
	s.mark(7)
	assert.True(t, s.take(7))
	assert.False(t, s.take(7))
	assert.False(t, s.take(8))
}
