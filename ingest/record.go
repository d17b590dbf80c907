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

// Package ingest implements the illustrative CSV producer and
// message-queue receiver: a vehicle telemetry CSV is parsed into records,
// forwarded across a mangos socket, and turned into scheduler jobs on the
// other end. None of this is part of the scheduler's own correctness
// properties; it is glue exercising the public Submit/Shutdown contract.
package ingest

import "time"

// VehicleRecord is one parsed telemetry sample.
type VehicleRecord struct {
	VehicleID     string    `json:"vehicleId"`
	Timestamp     time.Time `json:"timestamp"`
	SpeedMph      float64   `json:"speedMph"`
	EngineOn      bool      `json:"engineOn"`
	ErrorCode     string    `json:"errorCode,omitempty"`
	CorrelationID string    `json:"correlationId"`
}

// IsSentinel reports whether the record marks the end of the stream.
// An empty vehicle id can't describe a real vehicle, so it is reserved
// for this purpose.
func (r VehicleRecord) IsSentinel() bool {
	return r.VehicleID == ""
}

// Sentinel returns the end-of-stream record.
func Sentinel() VehicleRecord {
	return VehicleRecord{}
}
