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

// cancelSet holds the identifiers of jobs marked cancelled before dispatch.
// Lazily drained by the worker that encounters a cancelled job at pop time;
// entries for ids that were already dispatched, or that never existed, are
// simply never looked up again and are harmless. Access happens entirely
// under the owning Scheduler's mutex.
type cancelSet map[ID]struct{}

func newCancelSet() cancelSet {
	return make(cancelSet)
}

func (s cancelSet) mark(id ID) {
	s[id] = struct{}{}
}

// take reports whether id was marked cancelled, removing it if so.
func (s cancelSet) take(id ID) bool {
	if _, found := s[id]; !found {
		return false
	}
	delete(s, id)
	return true
}
