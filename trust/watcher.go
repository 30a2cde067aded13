// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trust

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - reload a List whenever its file is written
type Watcher struct {
	log      *logger.L
	list     *List
	watcher  *fsnotify.Watcher
	filePath string
	reloaded chan struct{}
}

// NewWatcher - load the file once and prepare to watch it
//
// the directory is watched so that a file replaced by rename is
// still seen
func NewWatcher(log *logger.L, list *List, fileName string) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	err = list.Load(filePath)
	if nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		list:     list,
		watcher:  watcher,
		filePath: filePath,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded - receives after each successful reload
func (w *Watcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run - background process
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	defer func() {
		w.watcher.Close()
		log.Info("stopped")
	}()

	log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue loop
			}
			log.Debugf("file event: %v", event)

			if eventFileRemove(event) {
				log.Warnf("file: %q removed, keeping current list", w.filePath)
				continue loop
			}
			if !eventFileChange(event) {
				continue loop
			}

			err := w.list.Load(w.filePath)
			if nil != err {
				log.Errorf("reload: %q  error: %s", w.filePath, err)
				continue loop
			}

			// discard if nobody is waiting
			select {
			case w.reloaded <- struct{}{}:
			default:
			}
		}
	}
}

func eventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func eventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
