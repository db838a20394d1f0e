// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
)

const stateFileSuffix = "deepin/waydisplay/state.json"

// DefaultStateFile is ~/.config/deepin/waydisplay/state.json
func DefaultStateFile() string {
	return filepath.Join(basedir.GetUserConfigDir(), stateFileSuffix)
}

// LoadState reads a saved layout. Fields missing from the file keep the
// values of NewLayoutState; LastError always starts empty.
func LoadState(filename string) (*LayoutState, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	s := NewLayoutState()
	err = json.Unmarshal(data, s)
	if err != nil {
		return nil, err
	}
	s.LastError = ""
	s.revalidate()

	if logger.GetLogLevel() == log.LevelDebug {
		logger.Debug("load state:", spew.Sdump(s))
	}
	return s, nil
}

// LoadStateOrDefault is LoadState falling back to an empty state.
func LoadStateOrDefault(filename string) *LayoutState {
	s, err := LoadState(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("failed to load state:", err)
		}
		return NewLayoutState()
	}
	return s
}

func SaveState(filename string, s *LayoutState) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filename), 0755)
	if err != nil {
		return err
	}
	logger.Debug("save state to", filename)
	return ioutil.WriteFile(filename, data, 0644)
}
