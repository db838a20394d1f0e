// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

import (
	"encoding/json"
	"sync"

	"github.com/linuxdeepin/go-lib/dbusutil"
	"golang.org/x/xerrors"
)

// Manager exports a LayoutState on D-Bus. Method calls arrive on several
// goroutines, mu serialises them.
type Manager struct {
	service   *dbusutil.Service
	backend   Backend
	runner    Runner
	stateFile string

	mu    sync.Mutex
	state *LayoutState

	PropsMu         sync.RWMutex
	LastError       string
	LastCommand     string
	SelectedMonitor int32
	SelectedMode    int32
	MonitorEnabled  bool
	AdaptiveSync    bool
}

func newManager(service *dbusutil.Service, opts Options) *Manager {
	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	backend := opts.Backend
	if backend == nil {
		backend = NewWlrBackend(DefaultWlrTool, runner)
	}

	var state *LayoutState
	if opts.StateFile != "" {
		state = LoadStateOrDefault(opts.StateFile)
	} else {
		state = NewLayoutState()
	}
	if opts.Layout != (LayoutOptions{}) {
		state.Options = opts.Layout
	}

	return &Manager{
		service:   service,
		backend:   backend,
		runner:    runner,
		stateFile: opts.StateFile,
		state:     state,
	}
}

func (m *Manager) init() {
	m.mu.Lock()
	err := m.state.Refresh(m.backend)
	m.mu.Unlock()
	if err != nil {
		logger.Warning("initial refresh failed:", err)
	}
	m.syncProps()
}

func (m *Manager) syncProps() {
	m.mu.Lock()
	s := *m.state
	m.mu.Unlock()

	m.PropsMu.Lock()
	m.setPropLastError(s.LastError)
	m.setPropLastCommand(s.LastCommand)
	m.setPropSelectedMonitor(int32(s.SelectedMonitor))
	m.setPropSelectedMode(int32(s.SelectedMode))
	m.setPropMonitorEnabled(s.MonitorEnabled)
	m.setPropAdaptiveSync(s.AdaptiveSync)
	m.PropsMu.Unlock()
}

// update runs fn on the state and publishes the resulting properties.
func (m *Manager) update(fn func(s *LayoutState)) {
	m.mu.Lock()
	fn(m.state)
	m.mu.Unlock()
	m.syncProps()
}

func (m *Manager) refresh() error {
	var err error
	m.update(func(s *LayoutState) {
		err = s.Refresh(m.backend)
	})
	return err
}

func (m *Manager) listMonitors() (string, error) {
	m.mu.Lock()
	data, err := json.Marshal(m.state.Monitors)
	m.mu.Unlock()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (m *Manager) selectMonitor(idx int) error {
	var ok bool
	m.update(func(s *LayoutState) {
		ok = s.SelectMonitor(idx)
	})
	if !ok {
		return xerrors.Errorf("invalid monitor index %d", idx)
	}
	return nil
}

func (m *Manager) selectMode(idx int) error {
	var ok bool
	m.update(func(s *LayoutState) {
		ok = s.SelectMode(idx)
	})
	if !ok {
		return xerrors.Errorf("invalid mode index %d", idx)
	}
	return nil
}

func (m *Manager) physicalPosition(idx int) (Position, error) {
	m.mu.Lock()
	pos, ok := m.state.PhysicalPositionFor(idx)
	m.mu.Unlock()
	if !ok {
		return Position{}, xerrors.Errorf("no position for monitor %d without a selected mode", idx)
	}
	return pos, nil
}

func (m *Manager) apply() (string, error) {
	var cmd *Command
	var err error
	m.update(func(s *LayoutState) {
		cmd, err = s.ApplySelection(m.backend, m.runner)
	})
	if cmd == nil {
		return "", err
	}
	return cmd.String(), err
}

func (m *Manager) save() error {
	if m.stateFile == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return SaveState(m.stateFile, m.state)
}

// SetOptions replaces the layout options, e.g. after the config file changed.
func (m *Manager) SetOptions(opts LayoutOptions) {
	m.mu.Lock()
	m.state.Options = opts
	m.mu.Unlock()
	logger.Debugf("layout options: %+v", opts)
}

func (m *Manager) Shutdown() {
	err := m.save()
	if err != nil {
		logger.Warning("failed to save state:", err)
	}
}
