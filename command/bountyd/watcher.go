// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/fault"
)

// watches the configuration file and reports changes
type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	done     chan struct{}
}

func newConfigWatcher(fileName string, log *logger.L) (*configWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// Start - watch the directory, editors often replace the file
func (w *configWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.run()
	return nil
}

// Stop - release the watcher
func (w *configWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}

// Changes - one pending notification per burst of writes
func (w *configWatcher) Changes() <-chan struct{} {
	return w.change
}

func (w *configWatcher) run() {
	defer close(w.done)
	base := filepath.Base(w.filePath)

loop:
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != base {
				continue loop
			}
			w.log.Debugf("file event: %v", event)
			if isChange(event) {
				w.notify()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	close(w.change)
}

func (w *configWatcher) notify() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("change already pending")
	}
}

func isChange(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// re-read the configuration and compare its log levels with the
// running ones
//
// the logger fixes a channel's level when the channel is created and
// cannot be re-initialised under live channels, so a change is only
// reported; it takes effect on restart
func checkLevels(log *logger.L, fileName string, running LoglevelMap) (bool, error) {
	options, err := getConfiguration(fileName)
	if nil != err {
		log.Errorf("reload configuration: %q error: %s", fileName, err)
		return false, err
	}

	changed := len(options.Logging.Levels) != len(running)
	for tag, level := range options.Logging.Levels {
		if running[tag] != level {
			changed = true
		}
	}
	if changed {
		log.Warnf("log levels changed to: %v  restart to apply", options.Logging.Levels)
	} else {
		log.Debug("configuration changed, log levels unchanged")
	}
	return changed, nil
}
