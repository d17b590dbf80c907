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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCSV = `car-1,2024-01-15T08:30:00Z,62.5,true,
car-2,2024-01-15T08:30:05Z,0,false,E42
`

func TestParser_ParsesRows(t *testing.T) {
	p := NewParser(strings.NewReader(sampleCSV))

	records, err := p.All()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, "car-1", records[0].VehicleID)
	assert.Equal(t, 62.5, records[0].SpeedMph)
	assert.True(t, records[0].EngineOn)
	assert.Empty(t, records[0].ErrorCode)
	assert.NotEmpty(t, records[0].CorrelationID)

	assert.Equal(t, "car-2", records[1].VehicleID)
	assert.Equal(t, "E42", records[1].ErrorCode)
	assert.NotEqual(t, records[0].CorrelationID, records[1].CorrelationID)
}

func TestParser_RejectsBadTimestamp(t *testing.T) {
	p := NewParser(strings.NewReader("car-1,not-a-time,10,true,\n"))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParser_RejectsBadSpeed(t *testing.T) {
	p := NewParser(strings.NewReader("car-1,2024-01-15T08:30:00Z,fast,true,\n"))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestParser_RejectsWrongFieldCount(t *testing.T) {
	p := NewParser(strings.NewReader("car-1,2024-01-15T08:30:00Z,10\n"))
	_, err := p.Next()
	assert.Error(t, err)
}
