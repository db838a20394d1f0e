// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/xerrors"
)

// Watcher reloads a config file whenever it is written, created or renamed
// into place and hands the result to a callback.
type Watcher struct {
	filename string
	watcher  *fsnotify.Watcher
	onChange func(*Config)
	done     chan struct{}
}

// Watch watches the directory of filename, so editors that replace the
// file are noticed too. The directory is created when missing.
func Watch(filename string, onChange func(*Config)) (*Watcher, error) {
	dir := filepath.Dir(filename)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, xerrors.Errorf("failed to create %s: %w", dir, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, xerrors.Errorf("failed to create watcher: %w", err)
	}
	err = fw.Add(dir)
	if err != nil {
		_ = fw.Close()
		return nil, xerrors.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		filename: filepath.Clean(filename),
		watcher:  fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("config changed:", ev)
			cfg, err := Load(w.filename)
			if err != nil {
				logger.Warning("failed to reload config:", err)
				continue
			}
			w.onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warning("watcher error:", err)
		}
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
