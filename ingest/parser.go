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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/twinj/uuid"
)

// fieldCount is the number of columns a row must have: vehicle-id,
// timestamp, speed, engine-on, error-code.
const fieldCount = 5

// Parser reads vehicle telemetry rows off a CSV stream. Each row becomes a
// VehicleRecord stamped with a fresh correlation id; Next returns io.EOF
// once the underlying reader is exhausted.
type Parser struct {
	r *csv.Reader
}

// NewParser builds a Parser over r. A trailing blank line after the last
// row is tolerated.
func NewParser(r io.Reader) *Parser {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldCount
	cr.TrimLeadingSpace = true
	return &Parser{r: cr}
}

// Next parses the next row, returning io.EOF when the stream is exhausted.
func (p *Parser) Next() (VehicleRecord, error) {
	row, err := p.r.Read()
	if err != nil {
		return VehicleRecord{}, err
	}

	ts, err := time.Parse(time.RFC3339, row[1])
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("ingest: invalid timestamp %q: %w", row[1], err)
	}

	speed, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("ingest: invalid speed %q: %w", row[2], err)
	}

	engineOn, err := strconv.ParseBool(row[3])
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("ingest: invalid engine-on %q: %w", row[3], err)
	}

	return VehicleRecord{
		VehicleID:     row[0],
		Timestamp:     ts,
		SpeedMph:      speed,
		EngineOn:      engineOn,
		ErrorCode:     row[4],
		CorrelationID: uuid.NewV4().String(),
	}, nil
}

// All drains the parser, stopping at the first error (io.EOF is not
// reported as a failure).
func (p *Parser) All() ([]VehicleRecord, error) {
	var records []VehicleRecord
	for {
		rec, err := p.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}
