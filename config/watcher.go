// Copyright 2017 Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

package config

import (
	"path/filepath"
	"runtime/debug"

	"github.com/fsnotify/fsnotify"

	"github.com/sid132sm/taskscheduler/internal/log"
)

// Watcher watches a config file's parent directory (fsnotify can't watch a
// not-yet-existing file directly) and invokes onChange with the freshly
// reloaded Config whenever the file is written, created, or renamed into
// place.
type Watcher struct {
	path     string
	log      log.T
	onChange func(Config)
	fsw      *fsnotify.Watcher
}

// NewWatcher builds a Watcher for the config file at path.
func NewWatcher(l log.T, path string, onChange func(Config)) *Watcher {
	return &Watcher{path: path, log: l, onChange: onChange}
}

// Start begins watching in a background goroutine. Errors starting the
// watcher are logged, not returned: hot reload is a convenience, not a
// dependency the daemon needs to boot.
func (w *Watcher) Start() {
	dir := filepath.Dir(w.path)
	w.log.Debugf("config: starting watcher on directory %v", dir)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Errorf("config: error initializing watcher: %v", err)
		return
	}
	w.fsw = fsw

	go w.handleEvents()

	if err := w.fsw.Add(dir); err != nil {
		w.log.Warnf("config: error adding directory %q to watcher: %v", dir, err)
	}
}

func (w *Watcher) handleEvents() {
	defer func() {
		if r := recover(); r != nil {
			w.log.Errorf("config: watcher panic: %v", r)
			w.log.Errorf("config: stacktrace:\n%s", debug.Stack())
		}
	}()

	for event := range w.fsw.Events {
		if filepath.Clean(event.Name) != filepath.Clean(w.path) {
			continue
		}
		if event.Op&fsnotify.Write == fsnotify.Write ||
			event.Op&fsnotify.Create == fsnotify.Create ||
			event.Op&fsnotify.Rename == fsnotify.Rename {
			w.log.Debugf("config: reload triggered by %v", event)
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Errorf("config: reload failed: %v", err)
				continue
			}
			w.onChange(cfg)
		}
	}
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		if err := w.fsw.Close(); err != nil {
			w.log.Debugf("config: error closing watcher: %v", err)
		}
	}
}
