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

// Package clock provides a mockable view of the monotonic clock used by the
// scheduler for deadline ordering and timed waits.
package clock

import "time"

// Clock is an interface that can provide time related functionality.
type Clock interface {
	// Now returns the current time on the monotonic clock.
	Now() time.Time

	// After returns a channel that will receive after the given duration.
	After(time.Duration) <-chan time.Time
}

// Default implements Clock by delegating to package time.
var Default Clock = defaultClock{}

type defaultClock struct{}

// Now returns the current time.
func (defaultClock) Now() time.Time {
	return time.Now()
}

// After returns a channel that will receive after the given duration has elapsed.
func (defaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
