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

// Command schedulerd wires a config, a logger, a scheduler, and the
// illustrative CSV ingest pipeline together into a long-running daemon.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sid132sm/taskscheduler/config"
	"github.com/sid132sm/taskscheduler/ingest"
	"github.com/sid132sm/taskscheduler/internal/log"
	"github.com/sid132sm/taskscheduler/scheduler"
)

func main() {
	configPath := flag.String("config", "schedulerd.json", "path to the scheduler daemon's JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Could not load config file: ", err)
		os.Exit(1)
	}

	logger, err := log.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Println("Could not initialize logger: ", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Infof("schedulerd: starting with %d workers, queue bound %d", cfg.WorkerCount, cfg.MaxQueueSize)
	sched := scheduler.New(logger, cfg.WorkerCount, cfg.MaxQueueSize)

	watcher := config.NewWatcher(logger, *configPath, func(reloaded config.Config) {
		logger.Infof("schedulerd: config changed on disk; logLevel=%s is applied on next restart", reloaded.LogLevel)
	})
	watcher.Start()
	defer watcher.Stop()

	receiver, err := ingest.NewReceiver(logger, cfg.IngestAddress, sched)
	if err != nil {
		logger.Errorf("schedulerd: failed to start ingest receiver: %v", err)
		os.Exit(1)
	}
	defer receiver.Close()

	go func() {
		if err := receiver.Run(func(rec ingest.VehicleRecord) {
			logger.Debugf("schedulerd: processed record %s for vehicle %s", rec.CorrelationID, rec.VehicleID)
		}); err != nil {
			logger.Errorf("schedulerd: ingest receiver stopped: %v", err)
		}
	}()

	// Set up channel on which to receive signal notifications. A buffered
	// channel avoids missing the signal if we're not ready to receive when
	// it's sent.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	s := <-c
	logger.Infof("schedulerd: got signal %v, shutting down gracefully", s)
	sched.Shutdown(scheduler.Graceful)
	logger.Info("schedulerd: bye.")
}
