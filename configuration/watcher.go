// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// editors write in bursts; changes within this window are coalesced
const settleTime = 200 * time.Millisecond

// Watcher - calls reload each time the configuration file changes
//
// the containing directory is watched so files that are replaced
// rather than rewritten are still seen
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	reload   func(fileName string)
}

// NewWatcher - watcher for one file
//
// call Close if the watcher is never Run
func NewWatcher(fileName string, reload func(fileName string)) (*Watcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      logger.New("configuration"),
		watcher:  watcher,
		fileName: fileName,
		reload:   reload,
	}, nil
}

// Run - deliver reloads until shutdown
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.fileName)

	timer := time.NewTimer(settleTime)
	timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !w.relevant(event) {
				continue loop
			}
			log.Debugf("event: %s", event)
			timer.Reset(settleTime)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watch error: %s", err)

		case <-timer.C:
			log.Infof("reload: %q", w.fileName)
			w.reload(w.fileName)
		}
	}

	timer.Stop()
	w.Close()
	log.Info("stopped")
}

// Close - release the underlying watch
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.fileName {
		return false
	}
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename)
}
