// Copyright 2017 Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

// Package recur expresses recurring work as a scheduler.Job that
// resubmits itself. The scheduler core has no recurrence primitive of its
// own, so a cron-style schedule is layered on top of the ordinary Submit
// contract: each occurrence computes the next fire time and submits it
// before returning.
package recur

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/sid132sm/taskscheduler/internal/log"
	"github.com/sid132sm/taskscheduler/scheduler"
)

// Submitter is the subset of *scheduler.Scheduler that Every needs. It lets
// tests substitute a fake scheduler without pulling in the real one.
type Submitter interface {
	Submit(work scheduler.Job, runAt time.Time, priority scheduler.Priority) (scheduler.ID, error)
}

// Every parses expr as a standard five-field cron expression and submits
// work so that it runs at every matching instant, for as long as the
// scheduler keeps accepting submissions. Each run resubmits the next
// occurrence, computed from its own scheduled fire time, before returning.
// Every returns the id of the first occurrence only; the ids of later
// occurrences are not exposed, so scheduler.Cancel on the returned id stops
// the recurrence only if it lands before that first occurrence is dispatched.
func Every(l log.T, s Submitter, expr string, priority scheduler.Priority, work func()) (scheduler.ID, error) {
	schedule, err := cronexpr.Parse(expr)
	if err != nil {
		return 0, fmt.Errorf("recur: invalid cron expression %q: %w", expr, err)
	}

	var resubmit func(from time.Time) (scheduler.ID, error)
	resubmit = func(from time.Time) (scheduler.ID, error) {
		next := schedule.Next(from)
		return s.Submit(func() {
			work()
			if _, err := resubmit(next); err != nil {
				l.Errorf("recur: failed to resubmit %q: %v", expr, err)
			}
		}, next, priority)
	}

	return resubmit(time.Now())
}
