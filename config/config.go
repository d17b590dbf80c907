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

// Package config loads the scheduler daemon's settings from a JSON file:
// a plain struct, defaults applied for zero values, encoding/json for
// parsing.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds everything cmd/schedulerd needs to stand up a Scheduler and
// its ingest pipeline.
type Config struct {
	// WorkerCount is the number of worker goroutines the scheduler runs.
	WorkerCount int `json:"workerCount"`
	// MaxQueueSize bounds how many undispatched jobs may sit in the queue.
	MaxQueueSize int `json:"maxQueueSize"`
	// LogLevel is one of trace/debug/info/warn/error, passed to seelog.
	LogLevel string `json:"logLevel"`
	// LogDir is the directory seelog writes its log files under.
	LogDir string `json:"logDir"`
	// IngestAddress is the mangos socket address the CSV publisher listens
	// on and the receiver dials, e.g. "ipc:///var/run/taskscheduler.ipc".
	IngestAddress string `json:"ingestAddress"`
}

// Default values applied to zero fields by Load.
const (
	DefaultWorkerCount   = 4
	DefaultMaxQueueSize  = 256
	DefaultLogLevel      = "info"
	DefaultLogDir        = "log"
	DefaultIngestAddress = "ipc:///tmp/taskscheduler-ingest.ipc"
)

// Default returns a Config populated entirely with defaults.
func Default() Config {
	return Config{
		WorkerCount:   DefaultWorkerCount,
		MaxQueueSize:  DefaultMaxQueueSize,
		LogLevel:      DefaultLogLevel,
		LogDir:        DefaultLogDir,
		IngestAddress: DefaultIngestAddress,
	}
}

// Load reads and parses the JSON config file at path, filling any zero
// field with its default. A missing file is not an error: Load returns
// Default() unchanged, so the daemon boots on built-in defaults when no
// override file is present.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	var override Config
	if err := json.Unmarshal(content, &override); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}

	applyOverrides(&cfg, override)
	return cfg, nil
}

func applyOverrides(cfg *Config, override Config) {
	if override.WorkerCount != 0 {
		cfg.WorkerCount = override.WorkerCount
	}
	if override.MaxQueueSize != 0 {
		cfg.MaxQueueSize = override.MaxQueueSize
	}
	if override.LogLevel != "" {
		cfg.LogLevel = override.LogLevel
	}
	if override.LogDir != "" {
		cfg.LogDir = override.LogDir
	}
	if override.IngestAddress != "" {
		cfg.IngestAddress = override.IngestAddress
	}
}
