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
	"encoding/json"
	"fmt"
	"time"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pull"
	_ "go.nanomsg.org/mangos/v3/transport/ipc"

	"github.com/sid132sm/taskscheduler/internal/log"
	"github.com/sid132sm/taskscheduler/scheduler"
)

// Scheduler is the subset of *scheduler.Scheduler the Receiver needs.
type Scheduler interface {
	Submit(work scheduler.Job, runAt time.Time, priority scheduler.Priority) (scheduler.ID, error)
	Shutdown(mode scheduler.Mode)
}

// Receiver is the counterpart to Publisher: it pulls records off a mangos
// socket and submits one scheduler job per record. The sentinel record
// gracefully shuts down the scheduler it feeds.
type Receiver struct {
	log    log.T
	socket mangos.Socket
	sched  Scheduler
}

// NewReceiver opens a pull socket dialed to addr and wires it to sched.
func NewReceiver(l log.T, addr string, sched Scheduler) (*Receiver, error) {
	socket, err := pull.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("ingest: new pull socket: %w", err)
	}
	if err := socket.Dial(addr); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("ingest: dial %q: %w", addr, err)
	}
	return &Receiver{log: l, socket: socket, sched: sched}, nil
}

// Run receives records until the sentinel arrives, submitting a job for
// each. process is called synchronously, inside the submitted job, with
// the decoded record.
func (r *Receiver) Run(process func(VehicleRecord)) error {
	for {
		msg, err := r.socket.Recv()
		if err != nil {
			return fmt.Errorf("ingest: recv: %w", err)
		}

		var rec VehicleRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			r.log.Errorf("ingest: dropping malformed record: %v", err)
			continue
		}

		if rec.IsSentinel() {
			r.log.Infof("ingest: end of stream, shutting down gracefully")
			r.sched.Shutdown(scheduler.Graceful)
			return nil
		}

		priority := scheduler.Normal
		if rec.ErrorCode != "" {
			priority = scheduler.High
		}

		if _, err := r.sched.Submit(func() { process(rec) }, time.Now(), priority); err != nil {
			r.log.Warnf("ingest: dropping record %s: %v", rec.CorrelationID, err)
		}
	}
}

// Close releases the underlying socket.
func (r *Receiver) Close() error {
	return r.socket.Close()
}
