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

	"github.com/cenkalti/backoff/v4"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/push"
	_ "go.nanomsg.org/mangos/v3/transport/ipc"

	"github.com/sid132sm/taskscheduler/internal/log"
)

// Publisher forwards VehicleRecords over a mangos push socket, the CSV
// producer side of the message-queue pair. It listens rather than dials:
// the producer owns the well-known address.
type Publisher struct {
	log    log.T
	socket mangos.Socket
}

// NewPublisher opens a push socket and listens on addr (an IPC path, e.g.
// "ipc:///tmp/vehicle-telemetry.ipc").
func NewPublisher(l log.T, addr string) (*Publisher, error) {
	socket, err := push.NewSocket()
	if err != nil {
		return nil, fmt.Errorf("ingest: new push socket: %w", err)
	}
	if err := socket.Listen(addr); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("ingest: listen on %q: %w", addr, err)
	}
	return &Publisher{log: l, socket: socket}, nil
}

// Publish sends rec, retrying transient send failures with exponential
// backoff.
func (p *Publisher) Publish(rec VehicleRecord) error {
	return p.send(rec)
}

// End sends the end-of-stream sentinel so the paired Receiver drains and
// gracefully shuts down its scheduler.
func (p *Publisher) End() error {
	return p.send(Sentinel())
}

func (p *Publisher) send(rec VehicleRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("ingest: marshal record: %w", err)
	}

	b, err := backoffconfigDefault()
	if err != nil {
		return err
	}

	attempt := 0
	op := func() error {
		attempt++
		if err := p.socket.Send(payload); err != nil {
			p.log.Warnf("ingest: publish attempt %d failed: %v", attempt, err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(op, b); err != nil {
		return fmt.Errorf("ingest: publish failed after retries: %w", err)
	}
	return nil
}

// Close releases the underlying socket.
func (p *Publisher) Close() error {
	return p.socket.Close()
}

// backoffconfigDefault builds the publisher's retry policy, kept local
// since the publisher is the only ingest component that retries.
func backoffconfigDefault() (*backoff.ExponentialBackOff, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultInitialInterval
	b.MaxInterval = defaultMaxInterval
	b.MaxElapsedTime = defaultMaxElapsedTime
	b.Reset()
	return b, nil
}
