// SPDX-FileCopyrightText: 2024 UnionTech Software Technology Co., Ltd.
//
// SPDX-License-Identifier: GPL-3.0-or-later

package display

func (m *Manager) emitPropChanged(name string, value interface{}) {
	if m.service == nil {
		return
	}
	err := m.service.EmitPropertyChanged(m, name, value)
	if err != nil {
		logger.Warning(err)
	}
}

func (m *Manager) setPropLastError(v string) {
	if m.LastError != v {
		m.LastError = v
		m.emitPropChanged("LastError", v)
	}
}

func (m *Manager) setPropLastCommand(v string) {
	if m.LastCommand != v {
		m.LastCommand = v
		m.emitPropChanged("LastCommand", v)
	}
}

func (m *Manager) setPropSelectedMonitor(v int32) {
	if m.SelectedMonitor != v {
		m.SelectedMonitor = v
		m.emitPropChanged("SelectedMonitor", v)
	}
}

func (m *Manager) setPropSelectedMode(v int32) {
	if m.SelectedMode != v {
		m.SelectedMode = v
		m.emitPropChanged("SelectedMode", v)
	}
}

func (m *Manager) setPropMonitorEnabled(v bool) {
	if m.MonitorEnabled != v {
		m.MonitorEnabled = v
		m.emitPropChanged("MonitorEnabled", v)
	}
}

func (m *Manager) setPropAdaptiveSync(v bool) {
	if m.AdaptiveSync != v {
		m.AdaptiveSync = v
		m.emitPropChanged("AdaptiveSync", v)
	}
}
