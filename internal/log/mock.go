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

package log

import "github.com/stretchr/testify/mock"

// Note: this is not a _test.go file so it can be imported by any package's
// tests without being copied into every package that needs it.

// Mock stands for a mocked log.
type Mock struct {
	mock.Mock
}

// NewMock returns a Mock with default expectations set for every method, so
// tests that don't care about logging can ignore it entirely.
func NewMock() *Mock {
	m := new(Mock)
	m.On("Close").Return()
	m.On("Flush").Return()
	m.On("Trace", mock.Anything).Return()
	m.On("Debug", mock.Anything).Return()
	m.On("Info", mock.Anything).Return()
	m.On("Warn", mock.Anything).Return(nil)
	m.On("Error", mock.Anything).Return(nil)
	m.On("Tracef", mock.Anything, mock.Anything).Return()
	m.On("Debugf", mock.Anything, mock.Anything).Return()
	m.On("Infof", mock.Anything, mock.Anything).Return()
	m.On("Warnf", mock.Anything, mock.Anything).Return(nil)
	m.On("Errorf", mock.Anything, mock.Anything).Return(nil)
	return m
}

func (m *Mock) Tracef(format string, params ...interface{}) {
	m.Called(format, params)
}

func (m *Mock) Debugf(format string, params ...interface{}) {
	m.Called(format, params)
}

func (m *Mock) Infof(format string, params ...interface{}) {
	m.Called(format, params)
}

func (m *Mock) Warnf(format string, params ...interface{}) error {
	ret := m.Called(format, params)
	return ret.Error(0)
}

func (m *Mock) Errorf(format string, params ...interface{}) error {
	ret := m.Called(format, params)
	return ret.Error(0)
}

func (m *Mock) Trace(v ...interface{}) {
	m.Called(v)
}

func (m *Mock) Debug(v ...interface{}) {
	m.Called(v)
}

func (m *Mock) Info(v ...interface{}) {
	m.Called(v)
}

func (m *Mock) Warn(v ...interface{}) error {
	ret := m.Called(v)
	return ret.Error(0)
}

func (m *Mock) Error(v ...interface{}) error {
	ret := m.Called(v)
	return ret.Error(0)
}

func (m *Mock) Flush() {
	m.Called()
}

func (m *Mock) Close() {
	m.Called()
}

// WithContext returns the same mock, ignoring context tagging; tests
// assert on the underlying calls, not the formatted prefix.
func (m *Mock) WithContext(context ...string) T {
	return m
}
